package doctor

import (
	"fmt"
	"net"
	"strings"
	"time"

	"routehealth/internal/inventory"
	"routehealth/internal/util"
	"routehealth/pkg/sshutil"
)

// DefaultReachTimeout bounds the terminal server TCP probe.
const DefaultReachTimeout = 5 * time.Second

// TestbedCheck verifies the testbed file parses and every device has a
// console command through the terminal server.
type TestbedCheck struct {
	Path string

	// Testbed holds the parsed inventory after a successful Run so
	// later checks can reuse it.
	Testbed *inventory.Testbed
}

func (c *TestbedCheck) Name() string     { return "testbed" }
func (c *TestbedCheck) Category() string { return "TESTBED" }

func (c *TestbedCheck) Run() CheckResult {
	tb, err := inventory.Load(c.Path)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    util.FirstLine(err.Error()),
			Suggestion: "Check the testbed path and YAML syntax",
		}
	}
	c.Testbed = tb

	if len(tb.Devices) == 0 {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "Testbed has a terminal server but no devices",
			Suggestion: "Add device entries with proxied cli connections",
		}
	}

	var missing []string
	for _, dev := range tb.Devices {
		if dev.ProxyCommand == "" {
			missing = append(missing, dev.Name)
		}
	}
	if len(missing) > 0 {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("%d of %d devices have no proxy command: %s", len(missing), len(tb.Devices), strings.Join(missing, ", ")),
			Suggestion: "Give each device a cli connection with proxy: terminal_server and a command",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Testbed OK: terminal server %s, %d device%s", tb.TerminalServer, len(tb.Devices), pluralize(len(tb.Devices))),
	}
}

// TerminalServerCheck probes the terminal server's SSH port over TCP.
type TerminalServerCheck struct {
	Address string // Host or host:port; port 22 is assumed when absent
	Timeout time.Duration
}

func (c *TerminalServerCheck) Name() string     { return "terminal_server" }
func (c *TerminalServerCheck) Category() string { return "TESTBED" }

func (c *TerminalServerCheck) Run() CheckResult {
	if c.Address == "" {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusFail,
			Message: "No terminal server address to probe",
		}
	}

	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultReachTimeout
	}

	addr := sshutil.ResolveAddress(c.Address)
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Cannot reach %s: %s", addr, util.FirstLine(err.Error())),
			Suggestion: probeSuggestion(err),
		}
	}
	conn.Close()

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Terminal server %s is reachable", addr),
	}
}

func probeSuggestion(err error) string {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "refused"):
		return "SSH may not be running on the terminal server"
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "i/o timeout"):
		return "Terminal server may be offline or blocked by a firewall"
	case strings.Contains(msg, "no such host"):
		return "Check the terminal server address in the testbed file"
	default:
		return "Verify network connectivity to the terminal server"
	}
}
