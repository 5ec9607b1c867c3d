package analyze

import (
	"strconv"
	"strings"

	"routehealth/internal/parse"
)

// CPUVerdict is the CPU load health result.
type CPUVerdict struct {
	Status  string `json:"cpu_health"`
	Percent int    `json:"cpu_percent"`
}

// CPU extracts the five-second utilization and compares it against the
// critical threshold. When no value can be extracted from either tier
// the status is Unknown.
func (a *Analyzer) CPU(structured []parse.Record, raw string) CPUVerdict {
	if pct, ok := cpuFromStructured(structured); ok {
		return a.cpuVerdict(pct)
	}
	if pct, ok := parse.ParseCPUUtilization(raw); ok {
		return a.cpuVerdict(pct)
	}
	return CPUVerdict{Status: StatusUnknown}
}

func (a *Analyzer) cpuVerdict(pct int) CPUVerdict {
	status := StatusOK
	if pct >= a.Thresholds.CPUCriticalPercent {
		status = StatusCritical
	}
	return CPUVerdict{Status: status, Percent: pct}
}

func cpuFromStructured(records []parse.Record) (int, bool) {
	if len(records) == 0 {
		return 0, false
	}
	val := strings.TrimSuffix(records[0].Get("cpu_utilization", ""), "%")
	pct, err := strconv.Atoi(val)
	if err != nil {
		return 0, false
	}
	return pct, true
}
