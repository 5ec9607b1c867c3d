package analyze

import "routehealth/internal/parse"

const routeSampleLimit = 3

// RoutingVerdict reports the routing-table size. It carries no health
// judgment and never contributes to the overall score.
type RoutingVerdict struct {
	Status      string         `json:"status"`
	TotalRoutes int            `json:"total_routes"`
	Samples     []parse.Record `json:"route_samples,omitempty"`
}

// Routing counts routes and keeps the first few rows as samples.
func (a *Analyzer) Routing(structured []parse.Record, raw string) RoutingVerdict {
	records := structured
	if len(records) == 0 {
		records = parse.ParseRoutes(raw)
	}
	samples := records
	if len(samples) > routeSampleLimit {
		samples = samples[:routeSampleLimit]
	}
	return RoutingVerdict{
		Status:      StatusOK,
		TotalRoutes: len(records),
		Samples:     samples,
	}
}
