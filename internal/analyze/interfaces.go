package analyze

import (
	"strings"

	"routehealth/internal/parse"
)

// DownInterface describes an IP-bearing interface that is not fully up.
type DownInterface struct {
	Interface string `json:"interface"`
	Status    string `json:"status"`
	Protocol  string `json:"protocol"`
}

// InterfaceVerdict is the interface-table health result.
type InterfaceVerdict struct {
	Status         string          `json:"interface_health"`
	InterfacesDown []DownInterface `json:"interfaces_down"`
	TotalChecked   int             `json:"total_checked"`
}

// Interfaces flags any interface that carries an IP address but whose
// link or protocol status is not "up". Unassigned interfaces are
// ignored entirely.
func (a *Analyzer) Interfaces(structured []parse.Record, raw string) InterfaceVerdict {
	records := structured
	if len(records) == 0 {
		records = parse.ParseInterfaceBrief(raw)
	}

	down := []DownInterface{}
	for _, intf := range records {
		ipaddr := strings.ToLower(intf.Get("ipaddr", "unassigned"))
		if ipaddr == "unassigned" || ipaddr == "" {
			continue
		}
		status := strings.ToLower(intf.Get("status", ""))
		protocol := strings.ToLower(intf.Get("protocol", ""))
		if status != "up" || protocol != "up" {
			down = append(down, DownInterface{
				Interface: intf.Get("interface", "unknown"),
				Status:    status,
				Protocol:  protocol,
			})
		}
	}

	verdict := InterfaceVerdict{
		Status:         StatusGood,
		InterfacesDown: down,
		TotalChecked:   len(records),
	}
	if len(down) > 0 {
		verdict.Status = StatusWarning
	}
	return verdict
}
