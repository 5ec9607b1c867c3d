package analyze

import (
	"strconv"

	"routehealth/internal/parse"
)

// BGPDownNeighbor is a summary-table neighbor not in Established state.
type BGPDownNeighbor struct {
	Neighbor string `json:"neighbor"`
	AS       string `json:"as"`
	State    string `json:"state"`
}

// BGPSummaryVerdict is the BGP session health result.
type BGPSummaryVerdict struct {
	Status        string            `json:"bgp_health"`
	TotalNeighbors int              `json:"bgp_total_neighbors"`
	Established   int               `json:"bgp_established_neighbors"`
	DownNeighbors []BGPDownNeighbor `json:"bgp_down_neighbors"`
	Neighbors     []parse.Record    `json:"bgp_neighbors_summary,omitempty"`
}

// HighFlapNeighbor is a neighbor whose dropped-connection count
// exceeds the flap threshold.
type HighFlapNeighbor struct {
	Neighbor  string `json:"neighbor"`
	Flaps     int    `json:"flaps"`
	LastReset string `json:"last_reset"`
}

// BGPNeighborVerdict is the advisory result from the detailed neighbor
// output. It never changes the BGP status on its own.
type BGPNeighborVerdict struct {
	HighFlapNeighbors []HighFlapNeighbor `json:"bgp_high_flap_neighbors"`
	NeighborDetails   []parse.Record     `json:"bgp_neighbor_details,omitempty"`
}

// BGPSummary checks that every configured neighbor is Established.
// Zero neighbor rows means BGP is not configured on the device.
func (a *Analyzer) BGPSummary(structured []parse.Record, raw string) BGPSummaryVerdict {
	neighbors := structured
	if len(neighbors) == 0 {
		neighbors = parse.ParseBGPSummary(raw)
	}
	if len(neighbors) == 0 {
		return BGPSummaryVerdict{
			Status:        StatusNotConfigured,
			DownNeighbors: []BGPDownNeighbor{},
		}
	}

	established := 0
	down := []BGPDownNeighbor{}
	for _, n := range neighbors {
		state := n.Get("state", n.Get("state_pfxrcd", "Unknown"))
		if state == "Established" || isDigits(state) {
			established++
			continue
		}
		down = append(down, BGPDownNeighbor{
			Neighbor: n.Get("neighbor", "Unknown"),
			AS:       n.Get("as", "Unknown"),
			State:    state,
		})
	}

	status := StatusOK
	if established < len(neighbors) {
		status = StatusCritical
	}
	return BGPSummaryVerdict{
		Status:        status,
		TotalNeighbors: len(neighbors),
		Established:   established,
		DownNeighbors: down,
		Neighbors:     neighbors,
	}
}

// BGPNeighbors flags neighbors with excessive session drops.
func (a *Analyzer) BGPNeighbors(structured []parse.Record, raw string) BGPNeighborVerdict {
	details := structured
	if len(details) == 0 {
		details = parse.ParseBGPNeighbors(raw)
	}

	flapping := []HighFlapNeighbor{}
	for _, n := range details {
		flaps, _ := n.Int("route_flaps")
		if flaps > a.Thresholds.BGPFlapCount {
			flapping = append(flapping, HighFlapNeighbor{
				Neighbor:  n.Get("neighbor", "Unknown"),
				Flaps:     flaps,
				LastReset: n.Get("last_reset", "N/A"),
			})
		}
	}
	return BGPNeighborVerdict{
		HighFlapNeighbors: flapping,
		NeighborDetails:   details,
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	_, err := strconv.Atoi(s)
	return err == nil
}
