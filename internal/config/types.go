package config

import (
	"time"

	"routehealth/internal/analyze"
)

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .routehealth.yaml configuration file.
type Config struct {
	Version     int                `yaml:"version" mapstructure:"version"`
	Testbed     string             `yaml:"testbed" mapstructure:"testbed"`
	ReportPath  string             `yaml:"report" mapstructure:"report"`
	Concurrency int                `yaml:"concurrency" mapstructure:"concurrency"`
	SSH         SSHConfig          `yaml:"ssh" mapstructure:"ssh"`
	Timeouts    TimeoutConfig      `yaml:"timeouts" mapstructure:"timeouts"`
	Thresholds  analyze.Thresholds `yaml:"thresholds" mapstructure:"thresholds"`
	Output      OutputConfig       `yaml:"output" mapstructure:"output"`
}

// SSHConfig holds terminal-server connection settings. The password is
// never stored in the file; it comes from the environment.
type SSHConfig struct {
	// User overrides the RH_SSH_USER environment variable.
	User string `yaml:"user" mapstructure:"user"`

	// StrictHostKeyChecking rejects unknown host keys when set.
	StrictHostKeyChecking bool `yaml:"strict_host_key_checking" mapstructure:"strict_host_key_checking"`
}

// TimeoutConfig holds the session timing knobs.
type TimeoutConfig struct {
	// Probe bounds the TCP reachability check of the terminal server.
	Probe time.Duration `yaml:"probe" mapstructure:"probe"`

	// Prompt bounds the wait for the first device prompt.
	Prompt time.Duration `yaml:"prompt" mapstructure:"prompt"`

	// Command is the per-command read timeout for local-state commands.
	Command time.Duration `yaml:"command" mapstructure:"command"`

	// BGPCommand is the longer timeout for commands that contact
	// external peers.
	BGPCommand time.Duration `yaml:"bgp_command" mapstructure:"bgp_command"`
}

// OutputConfig controls terminal output formatting.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	Color string `yaml:"color" mapstructure:"color"`
}

// DefaultConfig returns a Config with the stock settings.
func DefaultConfig() *Config {
	return &Config{
		Version:     CurrentConfigVersion,
		Testbed:     "testbed.yaml",
		ReportPath:  "device_health_summary.json",
		Concurrency: 5,
		SSH: SSHConfig{
			StrictHostKeyChecking: false,
		},
		Timeouts: TimeoutConfig{
			Probe:      5 * time.Second,
			Prompt:     15 * time.Second,
			Command:    6 * time.Second,
			BGPCommand: 8 * time.Second,
		},
		Thresholds: analyze.DefaultThresholds(),
		Output: OutputConfig{
			Color: "auto",
		},
	}
}
