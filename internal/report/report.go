// Package report persists the merged network report as JSON and
// renders the terminal summary.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"routehealth/internal/analyze"
	"routehealth/internal/errors"
	"routehealth/internal/poll"
	"routehealth/internal/ui"
)

// WriteJSON writes the report to path, creating parent directories as
// needed.
func WriteJSON(r *poll.NetworkReport, path string) error {
	data, err := json.MarshalIndent(r, "", "    ")
	if err != nil {
		return errors.Wrap(err, "Failed to encode report")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to create report directory "+dir,
				"Check the report path and permissions")
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write report to "+path,
			"Check the report path and permissions")
	}
	return nil
}

// Renderer writes the terminal summary. Styling is dropped when color
// is off.
type Renderer struct {
	Out   io.Writer
	Color bool
}

const ruleWidth = 60

func (r *Renderer) style(status string) lipgloss.Style {
	if !r.Color {
		return lipgloss.NewStyle()
	}
	return ui.StatusStyle(status)
}

func (r *Renderer) rule(title string) {
	line := strings.Repeat("=", ruleWidth)
	fmt.Fprintf(r.Out, "\n%s\n%s\n%s\n", line, title, line)
}

// Render prints the BGP section followed by the overall device table.
func (r *Renderer) Render(report *poll.NetworkReport) {
	names := make([]string, 0, len(report.Devices))
	for name := range report.Devices {
		names = append(names, name)
	}
	sort.Strings(names)

	r.renderBGP(report, names)
	r.renderOverall(report, names)
}

func (r *Renderer) renderBGP(report *poll.NetworkReport, names []string) {
	r.rule("BGP HEALTH SUMMARY")

	configured, healthy := 0, 0
	for _, name := range names {
		rec := report.Devices[name]
		if rec.BGPSummaryVerdict == nil || rec.BGPSummaryVerdict.Status == analyze.StatusNotConfigured {
			continue
		}
		configured++
		v := rec.BGPSummaryVerdict

		fmt.Fprintf(r.Out, "\n%s:\n", name)
		fmt.Fprintf(r.Out, "  Status: %s\n", r.style(v.Status).Render(v.Status))
		fmt.Fprintf(r.Out, "  Neighbors: %d/%d Established\n", v.Established, v.TotalNeighbors)

		if v.Status == analyze.StatusOK {
			healthy++
			fmt.Fprintf(r.Out, "  %s All BGP neighbors healthy\n",
				r.style(analyze.StatusOK).Render(ui.SymbolSuccess))
		}
		if len(v.DownNeighbors) > 0 {
			fmt.Fprintf(r.Out, "  %s Down Neighbors:\n",
				r.style(analyze.StatusCritical).Render(ui.SymbolFail))
			for _, n := range v.DownNeighbors {
				fmt.Fprintf(r.Out, "    - %s (AS %s) - State: %s\n", n.Neighbor, n.AS, n.State)
			}
		}
		if rec.BGPNeighborVerdict != nil && len(rec.BGPNeighborVerdict.HighFlapNeighbors) > 0 {
			fmt.Fprintf(r.Out, "  %s High Flap Neighbors:\n",
				r.style(analyze.StatusWarningUpper).Render(ui.SymbolWarn))
			for _, n := range rec.BGPNeighborVerdict.HighFlapNeighbors {
				fmt.Fprintf(r.Out, "    - %s - Flaps: %d\n", n.Neighbor, n.Flaps)
			}
		}
	}

	if configured == 0 {
		fmt.Fprintf(r.Out, "\n%s No devices with BGP configuration found\n", ui.SymbolInfo)
		return
	}
	fmt.Fprintf(r.Out, "\nTotal BGP Devices: %d\nHealthy: %d\nUnhealthy: %d\n",
		configured, healthy, configured-healthy)
}

func (r *Renderer) renderOverall(report *poll.NetworkReport, names []string) {
	r.rule("OVERALL DEVICE SUMMARY")

	for _, name := range names {
		rec := report.Devices[name]

		reach := ui.SymbolFail + " Unreachable"
		if rec.Reachable {
			reach = ui.SymbolSuccess + " Reachable"
		}
		bgp := "N/A"
		if rec.BGPSummaryVerdict != nil {
			bgp = rec.BGPSummaryVerdict.Status
		}
		fmt.Fprintf(r.Out, "%-20s %-20s Health: %-12s BGP: %s\n",
			name, reach,
			r.style(rec.OverallHealth).Render(rec.OverallHealth),
			r.style(bgp).Render(bgp))
	}

	healthy, unhealthy, unreachable := report.Counts()
	fmt.Fprintf(r.Out, "\nHealthy: %d  Unhealthy: %d  Unreachable: %d\n",
		healthy, unhealthy, unreachable)
	fmt.Fprintf(r.Out, "Total execution time: %s\n", report.Duration)
}
