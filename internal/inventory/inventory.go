// Package inventory loads the lab testbed file: the terminal-server
// address and the per-device console commands run through it.
package inventory

import (
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"routehealth/internal/errors"
)

const terminalServerName = "terminal_server"

// Device is one router reachable through the terminal server.
type Device struct {
	Name         string
	ProxyCommand string
}

// Testbed is the parsed inventory.
type Testbed struct {
	TerminalServer string
	Devices        []Device
}

type connectionEntry struct {
	IP      string `yaml:"ip"`
	Proxy   string `yaml:"proxy"`
	Command string `yaml:"command"`
}

type deviceEntry struct {
	Connections map[string]connectionEntry `yaml:"connections"`
}

type testbedFile struct {
	Devices map[string]deviceEntry `yaml:"devices"`
}

// Load reads and parses a testbed YAML file.
func Load(path string) (*Testbed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrInventory,
			"Failed to read testbed file "+path,
			"Check that the file exists and is readable")
	}
	return Parse(data)
}

// Parse decodes testbed YAML. The terminal_server entry provides the
// proxy address via its cli connection; every other device needs a
// connection proxied through the terminal server. Devices without one
// are kept with an empty ProxyCommand so they still appear in the
// report as errored rather than silently vanishing.
func Parse(data []byte) (*Testbed, error) {
	var file testbedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrInventory,
			"Failed to parse testbed YAML",
			"Check the file against the pyATS testbed format")
	}

	ts, ok := file.Devices[terminalServerName]
	if !ok {
		return nil, errors.New(errors.ErrInventory,
			"Testbed has no terminal_server device",
			"Add a terminal_server entry with a cli connection ip")
	}
	addr := ts.Connections["cli"].IP
	if addr == "" {
		return nil, errors.New(errors.ErrInventory,
			"terminal_server has no cli connection ip",
			"Set devices.terminal_server.connections.cli.ip")
	}

	tb := &Testbed{TerminalServer: addr}
	for name, entry := range file.Devices {
		if name == terminalServerName {
			continue
		}
		dev := Device{Name: name}
		for _, conn := range entry.Connections {
			if conn.Proxy == terminalServerName {
				dev.ProxyCommand = conn.Command
				break
			}
		}
		tb.Devices = append(tb.Devices, dev)
	}
	sort.Slice(tb.Devices, func(i, j int) bool {
		return tb.Devices[i].Name < tb.Devices[j].Name
	})

	if len(tb.Devices) == 0 {
		return nil, errors.New(errors.ErrInventory,
			"Testbed contains no devices besides the terminal server",
			"Add at least one device with a proxied connection")
	}
	return tb, nil
}
