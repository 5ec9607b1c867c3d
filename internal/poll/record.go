package poll

import (
	"routehealth/internal/analyze"
)

// State tracks a device through the polling pipeline.
type State string

const (
	StatePending      State = "PENDING"
	StateConnecting   State = "CONNECTING"
	StateUnreachable  State = "UNREACHABLE"
	StateCollecting   State = "COLLECTING"
	StatePartialError State = "PARTIAL_ERROR"
	StateAnalyzed     State = "ANALYZED"
	StateMerged       State = "MERGED"
)

// DeviceRecord is the per-device result. The embedded verdicts flatten
// into the JSON report, so the output keys match the summary shape the
// analyzers define; nil verdicts (unreachable device) emit no keys.
type DeviceRecord struct {
	Device        string `json:"device"`
	Reachable     bool   `json:"reachable"`
	OverallHealth string `json:"overall_health"`
	Error         string `json:"error,omitempty"`

	// ComponentErrors lists analyzers that failed in isolation.
	ComponentErrors []string `json:"component_errors,omitempty"`

	State State `json:"-"`

	*analyze.InterfaceVerdict
	*analyze.RoutingVerdict
	*analyze.CPUVerdict
	*analyze.MemoryVerdict
	*analyze.BGPSummaryVerdict
	*analyze.BGPNeighborVerdict
	*analyze.OSPFNeighborVerdict
	*analyze.OSPFDatabaseVerdict
	*analyze.OSPFInterfaceVerdict
}

// NetworkReport is the merged result for the whole run.
type NetworkReport struct {
	GeneratedAt string                   `json:"generated_at"`
	Duration    string                   `json:"duration"`
	Devices     map[string]*DeviceRecord `json:"devices"`
}

// Counts tallies overall verdicts across the report.
func (r *NetworkReport) Counts() (healthy, unhealthy, unreachable int) {
	for _, rec := range r.Devices {
		switch rec.OverallHealth {
		case "HEALTHY":
			healthy++
		case "UNHEALTHY":
			unhealthy++
		default:
			unreachable++
		}
	}
	return healthy, unhealthy, unreachable
}
