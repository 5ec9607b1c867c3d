package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"routehealth/internal/config"
	"routehealth/internal/doctor"
	"routehealth/internal/ui"
)

// doctor command flags
var (
	doctorJSONFlag    bool
	doctorTestbedFlag string
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose config, credentials, and testbed connectivity",
	Long: `Run environment diagnostics before a polling run: config discovery
and validation, SSH credential presence, testbed parsing, and a TCP
probe of the terminal server's SSH port.

Examples:
  routehealth doctor
  routehealth doctor --testbed lab/testbed.yaml
  routehealth doctor --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return doctorCommand()
	},
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSONFlag, "json", false, "output in JSON format")
	doctorCmd.Flags().StringVar(&doctorTestbedFlag, "testbed", "", "testbed YAML path (overrides config)")

	rootCmd.AddCommand(doctorCmd)
}

// DoctorOutput is the JSON shape of a doctor run.
type DoctorOutput struct {
	Categories []CategoryOutput `json:"categories"`
	Summary    SummaryOutput    `json:"summary"`
}

// CategoryOutput groups check results under one category.
type CategoryOutput struct {
	Name    string               `json:"name"`
	Results []doctor.CheckResult `json:"results"`
}

// SummaryOutput summarizes the check results.
type SummaryOutput struct {
	Pass     int  `json:"pass"`
	Warn     int  `json:"warn"`
	Fail     int  `json:"fail"`
	AllClear bool `json:"all_clear"`
}

func doctorCommand() error {
	// Load config tolerantly; the config checks report load problems
	// themselves, and defaults keep the later checks meaningful.
	var cfg *config.Config
	if path, err := config.Find(configFlag); err == nil && path != "" {
		if loaded, err := config.Load(path); err == nil {
			cfg = loaded
		}
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if doctorTestbedFlag != "" {
		cfg.Testbed = doctorTestbedFlag
	}

	tbCheck := &doctor.TestbedCheck{Path: cfg.Testbed}
	checks := []doctor.Check{
		&doctor.ConfigFileCheck{ConfigPath: configFlag},
		&doctor.ConfigSchemaCheck{ConfigPath: configFlag},
		&doctor.CredentialsCheck{Config: cfg},
		tbCheck,
	}

	results := doctor.RunAll(checks)

	// Probe the terminal server only when the testbed parsed.
	if tbCheck.Testbed != nil {
		reach := &doctor.TerminalServerCheck{
			Address: tbCheck.Testbed.TerminalServer,
			Timeout: cfg.Timeouts.Probe,
		}
		checks = append(checks, reach)
		results = append(results, reach.Run())
	}

	if doctorJSONFlag {
		return outputDoctorJSON(checks, results)
	}
	return outputDoctorText(checks, results)
}

func outputDoctorJSON(checks []doctor.Check, results []doctor.CheckResult) error {
	grouped := make(map[string][]doctor.CheckResult)
	var categoryOrder []string

	for i, check := range checks {
		cat := check.Category()
		if _, exists := grouped[cat]; !exists {
			categoryOrder = append(categoryOrder, cat)
		}
		grouped[cat] = append(grouped[cat], results[i])
	}

	output := DoctorOutput{Categories: make([]CategoryOutput, 0, len(categoryOrder))}
	for _, cat := range categoryOrder {
		output.Categories = append(output.Categories, CategoryOutput{Name: cat, Results: grouped[cat]})
	}

	counts := doctor.CountByStatus(results)
	output.Summary = SummaryOutput{
		Pass:     counts[doctor.StatusPass],
		Warn:     counts[doctor.StatusWarn],
		Fail:     counts[doctor.StatusFail],
		AllClear: !doctor.HasIssues(results),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func outputDoctorText(checks []doctor.Check, results []doctor.CheckResult) error {
	successStyle := lipgloss.NewStyle().Foreground(ui.ColorSuccess)
	errorStyle := lipgloss.NewStyle().Foreground(ui.ColorError)
	warnStyle := lipgloss.NewStyle().Foreground(ui.ColorWarning)
	mutedStyle := lipgloss.NewStyle().Foreground(ui.ColorMuted)
	headerStyle := lipgloss.NewStyle().Bold(true)

	fmt.Println()
	fmt.Println(headerStyle.Render("Routehealth Diagnostic Report"))
	fmt.Println()

	categoryOrder := []string{"CONFIG", "CREDENTIALS", "TESTBED"}
	grouped := make(map[string][]int)
	for i, check := range checks {
		grouped[check.Category()] = append(grouped[check.Category()], i)
	}

	for _, category := range categoryOrder {
		indices, ok := grouped[category]
		if !ok || len(indices) == 0 {
			continue
		}

		fmt.Println(headerStyle.Render(category))
		for _, idx := range indices {
			renderCheckResult(results[idx], successStyle, errorStyle, warnStyle, mutedStyle)
		}
		fmt.Println()
	}

	fmt.Println(strings.Repeat("━", 60))
	fmt.Println()

	if doctor.HasIssues(results) {
		fmt.Printf("%s %s\n", errorStyle.Render(ui.SymbolFail), doctor.Summary(results))
	} else {
		fmt.Printf("%s %s\n", successStyle.Render(ui.SymbolSuccess), doctor.Summary(results))
	}

	return nil
}

func renderCheckResult(result doctor.CheckResult, success, fail, warn, muted lipgloss.Style) {
	var symbol string
	switch result.Status {
	case doctor.StatusPass:
		symbol = success.Render(ui.SymbolSuccess)
	case doctor.StatusWarn:
		symbol = warn.Render(ui.SymbolWarn)
	default:
		symbol = fail.Render(ui.SymbolFail)
	}

	fmt.Printf("  %s %s\n", symbol, result.Message)
	if result.Suggestion != "" && result.Status != doctor.StatusPass {
		fmt.Printf("    %s\n", muted.Render(result.Suggestion))
	}
}
