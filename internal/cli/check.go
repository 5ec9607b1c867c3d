package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"routehealth/internal/analyze"
	"routehealth/internal/config"
	"routehealth/internal/errors"
	"routehealth/internal/inventory"
	"routehealth/internal/logger"
	"routehealth/internal/poll"
	"routehealth/internal/report"
	"routehealth/internal/ui"
)

// check command flags
var (
	checkTestbedFlag     string
	checkReportFlag      string
	checkConcurrencyFlag int
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Poll all devices and produce the health report",
	Long: `Connect to every device in the testbed through the terminal server,
run the health command set, and score each device.

Credentials come from the RH_SSH_USER and RH_SSH_PASSWORD environment
variables (a .env file in the working directory is honored).

Examples:
  routehealth check
  routehealth check --testbed lab/testbed.yaml
  routehealth check --report out/health.json --concurrency 10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return checkCommand()
	},
}

func init() {
	checkCmd.Flags().StringVar(&checkTestbedFlag, "testbed", "", "testbed YAML path (overrides config)")
	checkCmd.Flags().StringVar(&checkReportFlag, "report", "", "report JSON path (overrides config)")
	checkCmd.Flags().IntVar(&checkConcurrencyFlag, "concurrency", 0, "parallel device limit (overrides config)")

	rootCmd.AddCommand(checkCmd)
}

func checkCommand() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	user, password := cfg.Credentials()
	if user == "" || password == "" {
		return errors.New(errors.ErrConfig,
			"No SSH credentials configured",
			"Set "+config.EnvSSHUser+" and "+config.EnvSSHPassword+" in the environment or a .env file")
	}

	tb, err := inventory.Load(cfg.Testbed)
	if err != nil {
		return err
	}

	color := colorEnabled(cfg)
	if color {
		ui.PrintHeader(ui.HeaderInfo{
			Version:   formatVersion(version),
			Inventory: cfg.Testbed,
		})
	}

	log := logger.Default()
	log.Info("Polling %d devices via %s", len(tb.Devices), tb.TerminalServer)

	poller := poll.New(poll.Options{
		Opener:      poll.SessionOpener(cfg, log),
		Analyzer:    analyze.NewWithThresholds(cfg.Thresholds),
		Concurrency: cfg.Concurrency,
		Log:         log,
	})
	result := poller.Poll(tb)

	if err := report.WriteJSON(result, cfg.ReportPath); err != nil {
		return err
	}

	r := &report.Renderer{Out: os.Stdout, Color: color}
	r.Render(result)
	fmt.Printf("\nSummary saved to %s\n", cfg.ReportPath)
	return nil
}

// loadConfig resolves the config file and applies flag overrides.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error
	if configFlag != "" {
		path, ferr := config.Find(configFlag)
		if ferr != nil {
			return nil, ferr
		}
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadOrDefault()
	}
	if err != nil {
		return nil, err
	}

	if checkTestbedFlag != "" {
		cfg.Testbed = checkTestbedFlag
	}
	if checkReportFlag != "" {
		cfg.ReportPath = checkReportFlag
	}
	if checkConcurrencyFlag > 0 {
		cfg.Concurrency = checkConcurrencyFlag
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func colorEnabled(cfg *config.Config) bool {
	if noColorFlag {
		return false
	}
	switch cfg.Output.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		return ui.ColorEnabled()
	}
}
