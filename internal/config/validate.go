package config

import (
	"fmt"

	"routehealth/internal/errors"
)

var validColorModes = map[string]bool{
	"auto":   true,
	"always": true,
	"never":  true,
}

// Validate checks the config for errors and returns structured error
// messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but routehealth only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade routehealth or lower the version field")
	}

	if cfg.Testbed == "" {
		return errors.New(errors.ErrConfig,
			"No testbed file configured",
			"Set 'testbed' to your lab inventory YAML path")
	}
	if cfg.ReportPath == "" {
		return errors.New(errors.ErrConfig,
			"No report path configured",
			"Set 'report' to the output JSON path")
	}

	if cfg.Concurrency < 1 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Concurrency must be at least 1, got %d", cfg.Concurrency),
			"Set 'concurrency' to a positive number of parallel devices")
	}

	if err := validateTimeouts(cfg.Timeouts); err != nil {
		return err
	}
	if err := validateThresholds(cfg); err != nil {
		return err
	}

	if !validColorModes[cfg.Output.Color] {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Invalid color mode %q", cfg.Output.Color),
			"Use 'auto', 'always', or 'never'")
	}
	return nil
}

func validateTimeouts(t TimeoutConfig) error {
	checks := []struct {
		name string
		ok   bool
	}{
		{"timeouts.probe", t.Probe > 0},
		{"timeouts.prompt", t.Prompt > 0},
		{"timeouts.command", t.Command > 0},
		{"timeouts.bgp_command", t.BGPCommand > 0},
	}
	for _, c := range checks {
		if !c.ok {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("%s must be positive", c.name),
				"Use a duration string like '5s'")
		}
	}
	return nil
}

func validateThresholds(cfg *Config) error {
	th := cfg.Thresholds
	if th.CPUCriticalPercent < 1 || th.CPUCriticalPercent > 100 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("thresholds.cpu_critical_percent must be 1-100, got %d", th.CPUCriticalPercent),
			"Pick a percentage between 1 and 100")
	}
	if th.MemoryCriticalPercent < 1 || th.MemoryCriticalPercent > 100 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("thresholds.memory_critical_percent must be 1-100, got %d", th.MemoryCriticalPercent),
			"Pick a percentage between 1 and 100")
	}
	if th.BGPFlapCount < 0 {
		return errors.New(errors.ErrConfig,
			"thresholds.bgp_flap_count must not be negative",
			"Use 0 or a positive flap count")
	}
	if th.OSPFLSAFloodCount < 1 {
		return errors.New(errors.ErrConfig,
			"thresholds.ospf_lsa_flood_count must be positive",
			"Use a positive LSA count")
	}
	if th.OSPFDeadTimeWarnSecond < 0 {
		return errors.New(errors.ErrConfig,
			"thresholds.ospf_dead_time_warn_seconds must not be negative",
			"Use 0 or a positive number of seconds")
	}
	return nil
}
