package inventory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"routehealth/internal/errors"
)

const testbedYAML = `
devices:
  terminal_server:
    connections:
      cli:
        ip: 192.168.100.10
  r2:
    connections:
      a:
        proxy: terminal_server
        command: open /r2
  r1:
    connections:
      a:
        proxy: terminal_server
        command: open /r1
  r3:
    connections:
      mgmt:
        ip: 10.0.0.3
`

func TestParse(t *testing.T) {
	tb, err := Parse([]byte(testbedYAML))
	require.NoError(t, err)

	assert.Equal(t, "192.168.100.10", tb.TerminalServer)
	require.Len(t, tb.Devices, 3)

	// Sorted by name.
	assert.Equal(t, "r1", tb.Devices[0].Name)
	assert.Equal(t, "open /r1", tb.Devices[0].ProxyCommand)
	assert.Equal(t, "r2", tb.Devices[1].Name)

	// r3 has no proxied connection but is still listed.
	assert.Equal(t, "r3", tb.Devices[2].Name)
	assert.Empty(t, tb.Devices[2].ProxyCommand)
}

func TestParseMissingTerminalServer(t *testing.T) {
	_, err := Parse([]byte("devices:\n  r1:\n    connections: {}\n"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrInventory))
}

func TestParseMissingServerIP(t *testing.T) {
	raw := "devices:\n  terminal_server:\n    connections:\n      cli: {}\n"
	_, err := Parse([]byte(raw))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrInventory))
}

func TestParseNoDevices(t *testing.T) {
	raw := "devices:\n  terminal_server:\n    connections:\n      cli:\n        ip: 10.0.0.1\n"
	_, err := Parse([]byte(raw))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrInventory))
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("devices: [not: a map"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrInventory))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "testbed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testbedYAML), 0o644))

	tb, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "192.168.100.10", tb.TerminalServer)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrInventory))
}
