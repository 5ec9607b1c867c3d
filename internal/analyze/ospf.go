package analyze

import (
	"strings"

	"routehealth/internal/parse"
)

// OSPFDownNeighbor is a neighbor whose adjacency is not FULL.
type OSPFDownNeighbor struct {
	NeighborID string `json:"neighbor_id"`
	State      string `json:"state"`
	Interface  string `json:"interface"`
	Address    string `json:"address"`
	Area       string `json:"area"`
	Priority   string `json:"priority"`
}

// LowDeadTimeNeighbor is a FULL neighbor whose dead timer is close to
// expiring.
type LowDeadTimeNeighbor struct {
	NeighborID  string `json:"neighbor_id"`
	Interface   string `json:"interface"`
	DeadTime    string `json:"dead_time"`
	DeadSeconds int    `json:"dead_seconds"`
}

// AreaCounts buckets neighbor states for one OSPF area.
type AreaCounts struct {
	Total int `json:"total"`
	Full  int `json:"full"`
	Down  int `json:"down"`
}

// OSPFNeighborVerdict is the OSPF adjacency health result.
type OSPFNeighborVerdict struct {
	Status           string                `json:"ospf_health"`
	TotalNeighbors   int                   `json:"ospf_total_neighbors"`
	FullNeighbors    int                   `json:"ospf_full_neighbors"`
	DownNeighbors    []OSPFDownNeighbor    `json:"ospf_down_neighbors"`
	NeighborsByArea  map[string]AreaCounts `json:"ospf_neighbors_by_area"`
	LowDeadTime      []LowDeadTimeNeighbor `json:"ospf_low_dead_time_neighbors"`
}

// OSPFNeighbors checks that every adjacency is FULL. Any non-FULL
// neighbor is CRITICAL; an otherwise healthy table with a dead timer
// at or under the warning threshold is WARNING. Zero rows means OSPF
// is not configured.
func (a *Analyzer) OSPFNeighbors(structured []parse.Record, raw string) OSPFNeighborVerdict {
	neighbors := structured
	if len(neighbors) == 0 {
		neighbors = parse.ParseOSPFNeighbors(raw)
	}
	if len(neighbors) == 0 {
		return OSPFNeighborVerdict{
			Status:          StatusNotConfigured,
			DownNeighbors:   []OSPFDownNeighbor{},
			NeighborsByArea: map[string]AreaCounts{},
			LowDeadTime:     []LowDeadTimeNeighbor{},
		}
	}

	verdict := OSPFNeighborVerdict{
		TotalNeighbors:  len(neighbors),
		DownNeighbors:   []OSPFDownNeighbor{},
		NeighborsByArea: map[string]AreaCounts{},
		LowDeadTime:     []LowDeadTimeNeighbor{},
	}

	for _, n := range neighbors {
		state := strings.ToUpper(n.Get("state", ""))
		area := n.Get("area", "0.0.0.0")
		counts := verdict.NeighborsByArea[area]
		counts.Total++

		if strings.Contains(state, "FULL") {
			verdict.FullNeighbors++
			counts.Full++
		} else {
			counts.Down++
			verdict.DownNeighbors = append(verdict.DownNeighbors, OSPFDownNeighbor{
				NeighborID: n.Get("neighbor_id", "Unknown"),
				State:      state,
				Interface:  n.Get("interface", "Unknown"),
				Address:    n.Get("address", "Unknown"),
				Area:       area,
				Priority:   n.Get("priority", "0"),
			})
		}
		verdict.NeighborsByArea[area] = counts

		deadTime := n.Get("dead_time", "00:00:00")
		if secs, ok := parse.ParseDeadTime(deadTime); ok && secs <= a.Thresholds.OSPFDeadTimeWarnSecond {
			verdict.LowDeadTime = append(verdict.LowDeadTime, LowDeadTimeNeighbor{
				NeighborID:  n.Get("neighbor_id", "Unknown"),
				Interface:   n.Get("interface", "Unknown"),
				DeadTime:    deadTime,
				DeadSeconds: secs,
			})
		}
	}

	switch {
	case len(verdict.DownNeighbors) > 0:
		verdict.Status = StatusCritical
	case len(verdict.LowDeadTime) > 0:
		verdict.Status = StatusWarningUpper
	default:
		verdict.Status = StatusOK
	}
	return verdict
}

// OSPFDatabaseVerdict is the LSA database health result.
type OSPFDatabaseVerdict struct {
	Status           string         `json:"ospf_database_health"`
	TotalLSAs        int            `json:"ospf_lsa_total"`
	LSAByType        map[string]int `json:"ospf_lsa_by_type"`
	LSAByArea        map[string]int `json:"ospf_lsa_by_area"`
	FloodingDetected bool           `json:"ospf_flooding_detected"`
}

// OSPFDatabase counts LSAs and flags a total above the flood threshold.
func (a *Analyzer) OSPFDatabase(raw string) OSPFDatabaseVerdict {
	stats := parse.ParseOSPFDatabase(raw)
	flooding := stats.Total > a.Thresholds.OSPFLSAFloodCount
	status := StatusOK
	if flooding {
		status = StatusWarningUpper
	}
	return OSPFDatabaseVerdict{
		Status:           status,
		TotalLSAs:        stats.Total,
		LSAByType:        stats.ByType,
		LSAByArea:        stats.ByArea,
		FloodingDetected: flooding,
	}
}

// OSPFInterfaceIssue is an OSPF-enabled interface in a suspect state.
type OSPFInterfaceIssue struct {
	Interface string `json:"interface"`
	Issue     string `json:"issue"`
	Area      string `json:"area"`
}

// OSPFEnabledInterface is one row of the interface brief.
type OSPFEnabledInterface struct {
	Interface string `json:"interface"`
	Area      string `json:"area"`
	State     string `json:"state"`
	Neighbors int    `json:"neighbors"`
}

// OSPFInterfaceVerdict is the OSPF interface health result.
type OSPFInterfaceVerdict struct {
	Status          string                 `json:"ospf_interface_health"`
	TotalInterfaces int                    `json:"ospf_total_interfaces"`
	Enabled         []OSPFEnabledInterface `json:"ospf_enabled_interfaces"`
	Issues          []OSPFInterfaceIssue   `json:"ospf_interface_issues"`
}

// OSPFInterfaces flags interfaces stuck in DOWN or WAITING state.
func (a *Analyzer) OSPFInterfaces(structured []parse.Record, raw string) OSPFInterfaceVerdict {
	interfaces := structured
	if len(interfaces) == 0 {
		interfaces = parse.ParseOSPFInterfaces(raw)
	}

	verdict := OSPFInterfaceVerdict{
		TotalInterfaces: len(interfaces),
		Enabled:         []OSPFEnabledInterface{},
		Issues:          []OSPFInterfaceIssue{},
	}
	for _, intf := range interfaces {
		name := intf.Get("interface", "Unknown")
		state := intf.Get("state", "Unknown")
		area := intf.Get("area", "0.0.0.0")
		neighbors, _ := intf.Int("neighbors")

		verdict.Enabled = append(verdict.Enabled, OSPFEnabledInterface{
			Interface: name,
			Area:      area,
			State:     state,
			Neighbors: neighbors,
		})

		upper := strings.ToUpper(state)
		if upper == "DOWN" || upper == "WAITING" {
			verdict.Issues = append(verdict.Issues, OSPFInterfaceIssue{
				Interface: name,
				Issue:     "Interface state is " + state,
				Area:      area,
			})
		}
	}

	verdict.Status = StatusOK
	if len(verdict.Issues) > 0 {
		verdict.Status = StatusWarningUpper
	}
	return verdict
}
