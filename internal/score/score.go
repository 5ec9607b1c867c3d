// Package score computes the overall device verdict from component
// statuses. The rule is a strict AND: there is no partial credit.
package score

import "routehealth/internal/analyze"

// Overall device verdicts. UNREACHABLE and ERROR are set by the
// orchestrator, never by the scorer itself.
const (
	Healthy     = "HEALTHY"
	Unhealthy   = "UNHEALTHY"
	Unreachable = "UNREACHABLE"
	Errored     = "ERROR"
)

// Components carries the per-component statuses that feed the overall
// verdict. Zero values read as "no data": Unknown for the required
// components, NOT_CONFIGURED for the optional protocols.
type Components struct {
	Interface string
	CPU       string
	Memory    string
	BGP       string
	OSPF      string
}

func (c Components) withDefaults() Components {
	if c.Interface == "" {
		c.Interface = analyze.StatusUnknown
	}
	if c.CPU == "" {
		c.CPU = analyze.StatusUnknown
	}
	if c.Memory == "" {
		c.Memory = analyze.StatusUnknown
	}
	if c.BGP == "" {
		c.BGP = analyze.StatusNotConfigured
	}
	if c.OSPF == "" {
		c.OSPF = analyze.StatusNotConfigured
	}
	return c
}

// Overall reduces component statuses to HEALTHY or UNHEALTHY.
// Interface, CPU and memory must each be at their good value. BGP is
// checked only when configured and must be OK. OSPF is checked only
// when configured: CRITICAL fails the device, WARNING is tolerated.
func Overall(c Components) string {
	c = c.withDefaults()

	if c.Interface != analyze.StatusGood ||
		c.CPU != analyze.StatusOK ||
		c.Memory != analyze.StatusOK {
		return Unhealthy
	}
	if c.BGP != analyze.StatusNotConfigured && c.BGP != analyze.StatusOK {
		return Unhealthy
	}
	if c.OSPF != analyze.StatusNotConfigured && c.OSPF == analyze.StatusCritical {
		return Unhealthy
	}
	return Healthy
}
