package analyze

import (
	"strconv"
	"strings"

	"routehealth/internal/parse"
)

// MemoryVerdict is the processor-pool memory health result.
type MemoryVerdict struct {
	Status      string `json:"memory_health"`
	UsedPercent int    `json:"memory_used_percent"`
	TotalMB     int64  `json:"memory_total_mb"`
	UsedMB      int64  `json:"memory_used_mb"`
	FreeMB      int64  `json:"memory_free_mb"`
}

// Memory reads the processor pool from structured records, falling
// back to the raw-text layouts, and flags usage at or above the
// critical threshold. The percentage is integer-truncated.
func (a *Analyzer) Memory(structured []parse.Record, raw string) MemoryVerdict {
	stats, ok := memoryFromStructured(structured)
	if !ok {
		stats, ok = parse.ParseMemory(raw)
	}
	if !ok {
		return MemoryVerdict{Status: StatusUnknown}
	}

	pct := stats.UsedPercent()
	status := StatusOK
	if pct >= a.Thresholds.MemoryCriticalPercent {
		status = StatusCritical
	}
	return MemoryVerdict{
		Status:      status,
		UsedPercent: pct,
		TotalMB:     stats.TotalMB(),
		UsedMB:      stats.UsedMB(),
		FreeMB:      stats.FreeMB(),
	}
}

func memoryFromStructured(records []parse.Record) (parse.MemoryStats, bool) {
	for _, rec := range records {
		if !strings.Contains(strings.ToLower(rec.Get("pool", "")), "processor") {
			continue
		}
		total, err1 := strconv.ParseInt(rec.Get("total", ""), 10, 64)
		used, err2 := strconv.ParseInt(rec.Get("used", ""), 10, 64)
		free, err3 := strconv.ParseInt(rec.Get("free", ""), 10, 64)
		if err1 != nil || err2 != nil || err3 != nil || total <= 0 {
			return parse.MemoryStats{}, false
		}
		return parse.MemoryStats{Total: total, Used: used, Free: free}, true
	}
	return parse.MemoryStats{}, false
}
