package poll

import (
	"time"

	"routehealth/internal/session"
)

// The fixed command set run on every device, in order. Order matters
// only for session state (each command drains the previous one), not
// for analysis.
const (
	CmdInterfaceBrief     = "show ip interface brief"
	CmdRoute              = "show ip route"
	CmdProcessesCPU       = "show processes cpu"
	CmdProcessMemory      = "show process memory"
	CmdBGPSummary         = "show ip bgp summary"
	CmdBGPNeighbors       = "show ip bgp neighbors"
	CmdOSPFNeighbor       = "show ip ospf neighbor"
	CmdOSPFDatabase       = "show ip ospf database"
	CmdOSPFInterfaceBrief = "show ip ospf interface brief"
)

// Commands returns the device command list.
func Commands() []string {
	return []string{
		CmdInterfaceBrief,
		CmdRoute,
		CmdProcessesCPU,
		CmdProcessMemory,
		CmdBGPSummary,
		CmdBGPNeighbors,
		CmdOSPFNeighbor,
		CmdOSPFDatabase,
		CmdOSPFInterfaceBrief,
	}
}

// TimeoutRules builds the per-pattern timeout table: commands that
// contact external peers get the longer timeout.
func TimeoutRules(bgpTimeout time.Duration) []session.TimeoutRule {
	return []session.TimeoutRule{
		{Pattern: "bgp", Timeout: bgpTimeout},
	}
}
