package doctor

import (
	"fmt"
	"path/filepath"

	"routehealth/internal/config"
)

// ConfigFileCheck verifies that a config file exists.
type ConfigFileCheck struct {
	ConfigPath string // Explicit path, or empty to search
}

func (c *ConfigFileCheck) Name() string     { return "config_file" }
func (c *ConfigFileCheck) Category() string { return "CONFIG" }

func (c *ConfigFileCheck) Run() CheckResult {
	path, err := config.Find(c.ConfigPath)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Error finding config: %v", err),
			Suggestion: "Check file permissions on " + config.ConfigFileName,
		}
	}

	if path == "" {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "No config file found, built-in defaults will be used",
			Suggestion: "Create a " + config.ConfigFileName + " file to customize thresholds and timeouts",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Config file: %s", filepath.Base(path)),
	}
}

// ConfigSchemaCheck verifies that the config file loads and validates.
type ConfigSchemaCheck struct {
	ConfigPath string
}

func (c *ConfigSchemaCheck) Name() string     { return "config_schema" }
func (c *ConfigSchemaCheck) Category() string { return "CONFIG" }

func (c *ConfigSchemaCheck) Run() CheckResult {
	path, err := config.Find(c.ConfigPath)
	if err != nil || path == "" {
		// Defaults are always valid.
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "Using built-in defaults",
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Failed to load config: %v", err),
			Suggestion: "Check the YAML syntax in " + path,
		}
	}

	if err := config.Validate(cfg); err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Config validation failed: %v", err),
			Suggestion: "Fix the reported field in " + path,
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: "Config schema is valid",
	}
}

// CredentialsCheck verifies that SSH credentials are available.
type CredentialsCheck struct {
	Config *config.Config // nil loads defaults plus environment
}

func (c *CredentialsCheck) Name() string     { return "ssh_credentials" }
func (c *CredentialsCheck) Category() string { return "CREDENTIALS" }

func (c *CredentialsCheck) Run() CheckResult {
	cfg := c.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	user, password := cfg.Credentials()
	switch {
	case user == "" && password == "":
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "No SSH credentials configured",
			Suggestion: fmt.Sprintf("Set %s and %s in the environment or a .env file", config.EnvSSHUser, config.EnvSSHPassword),
		}
	case user == "":
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "SSH password is set but username is missing",
			Suggestion: "Set " + config.EnvSSHUser + " in the environment",
		}
	case password == "":
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("SSH username %q is set but password is missing", user),
			Suggestion: "Set " + config.EnvSSHPassword + " in the environment",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Credentials found for user %q", user),
	}
}
