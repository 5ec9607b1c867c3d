package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"routehealth/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
version: 1
testbed: lab/testbed.yaml
report: out/health.json
concurrency: 3
ssh:
  user: admin
  strict_host_key_checking: true
timeouts:
  probe: 2s
  prompt: 20s
  command: 4s
  bgp_command: 12s
thresholds:
  cpu_critical_percent: 60
  memory_critical_percent: 75
  bgp_flap_count: 3
  ospf_lsa_flood_count: 5000
  ospf_dead_time_warn_seconds: 5
output:
  color: never
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "lab/testbed.yaml", cfg.Testbed)
	assert.Equal(t, "out/health.json", cfg.ReportPath)
	assert.Equal(t, 3, cfg.Concurrency)
	assert.Equal(t, "admin", cfg.SSH.User)
	assert.True(t, cfg.SSH.StrictHostKeyChecking)
	assert.Equal(t, 2*time.Second, cfg.Timeouts.Probe)
	assert.Equal(t, 12*time.Second, cfg.Timeouts.BGPCommand)
	assert.Equal(t, 60, cfg.Thresholds.CPUCriticalPercent)
	assert.Equal(t, 5, cfg.Thresholds.OSPFDeadTimeWarnSecond)
	assert.Equal(t, "never", cfg.Output.Color)
}

func TestLoadMergesDefaults(t *testing.T) {
	path := writeConfig(t, "version: 1\ntestbed: tb.yaml\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "tb.yaml", cfg.Testbed)
	assert.Equal(t, "device_health_summary.json", cfg.ReportPath)
	assert.Equal(t, 5, cfg.Concurrency)
	assert.Equal(t, 5*time.Second, cfg.Timeouts.Probe)
	assert.Equal(t, 70, cfg.Thresholds.CPUCriticalPercent)
	assert.Equal(t, "auto", cfg.Output.Color)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "testbed: [broken")
	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestFindExplicit(t *testing.T) {
	path := writeConfig(t, "version: 1\n")
	found, err := Find(path)
	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestFindExplicitMissing(t *testing.T) {
	_, err := Find(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestCredentialsFromEnv(t *testing.T) {
	t.Setenv(EnvSSHUser, "envuser")
	t.Setenv(EnvSSHPassword, "envpass")

	cfg := DefaultConfig()
	user, password := cfg.Credentials()
	assert.Equal(t, "envuser", user)
	assert.Equal(t, "envpass", password)
}

func TestCredentialsConfigUserWins(t *testing.T) {
	t.Setenv(EnvSSHUser, "envuser")
	t.Setenv(EnvSSHPassword, "envpass")

	cfg := DefaultConfig()
	cfg.SSH.User = "cfguser"
	user, password := cfg.Credentials()
	assert.Equal(t, "cfguser", user)
	assert.Equal(t, "envpass", password)
}

func TestValidateDefaults(t *testing.T) {
	assert.NoError(t, Validate(DefaultConfig()))
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"future version", func(c *Config) { c.Version = CurrentConfigVersion + 1 }},
		{"empty testbed", func(c *Config) { c.Testbed = "" }},
		{"empty report", func(c *Config) { c.ReportPath = "" }},
		{"zero concurrency", func(c *Config) { c.Concurrency = 0 }},
		{"zero probe timeout", func(c *Config) { c.Timeouts.Probe = 0 }},
		{"negative command timeout", func(c *Config) { c.Timeouts.Command = -time.Second }},
		{"cpu threshold too high", func(c *Config) { c.Thresholds.CPUCriticalPercent = 101 }},
		{"memory threshold zero", func(c *Config) { c.Thresholds.MemoryCriticalPercent = 0 }},
		{"negative flap count", func(c *Config) { c.Thresholds.BGPFlapCount = -1 }},
		{"zero lsa flood", func(c *Config) { c.Thresholds.OSPFLSAFloodCount = 0 }},
		{"bad color mode", func(c *Config) { c.Output.Color = "rainbow" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := Validate(cfg)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrConfig))
		})
	}
}
