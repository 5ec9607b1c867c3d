// Package cli implements the routehealth command-line interface.
//
// The root command is "routehealth" with subcommands:
//
//	routehealth check     - Poll every device and produce the health report
//	routehealth doctor    - Diagnose config, credentials, and connectivity
//	routehealth version   - Print version information
//
// Global flags (--config, --no-color, --verbose) are defined on the
// root command; command-specific flags on the individual commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"routehealth/internal/logger"
)

// Global flags
var (
	configFlag  string
	noColorFlag bool
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "routehealth",
	Short: "Routing health analyzer for lab networks",
	Long: `routehealth polls Cisco IOS devices through a terminal server,
collects interface, CPU, memory, BGP and OSPF state over interactive
SSH sessions, and scores each device HEALTHY or UNHEALTHY.

The device list comes from a pyATS-style testbed YAML; results are
written to a JSON report and summarized on the terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseFlag {
			os.Setenv("RH_DEBUG", "1")
			logger.SetDefault(logger.NewEnvLogger("routehealth"))
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file path (default: .routehealth.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command. Errors are already formatted by the
// errors package; print and exit non-zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
