package parse

import (
	"strconv"
	"strings"
)

const bytesPerMB = 1024 * 1024

// MemoryStats holds processor-pool byte counts from
// "show process memory" output.
type MemoryStats struct {
	Total int64
	Used  int64
	Free  int64
}

// UsedPercent is integer-truncated, matching how the thresholds are
// compared elsewhere. Returns 0 when the total is unknown.
func (m MemoryStats) UsedPercent() int {
	if m.Total <= 0 {
		return 0
	}
	return int(m.Used * 100 / m.Total)
}

func (m MemoryStats) TotalMB() int64 { return m.Total / bytesPerMB }
func (m MemoryStats) UsedMB() int64  { return m.Used / bytesPerMB }
func (m MemoryStats) FreeMB() int64  { return m.Free / bytesPerMB }

// ParseMemory extracts processor-pool memory from either of the two
// known layouts, tried in fixed order:
//
//	Processor Pool Total: 1000000 Used: 400000 Free: 600000
//
// or a columnar table whose header row contains "Total(b)" and whose
// Processor data row is positional: name, heap pointer, total, used,
// free, lowest, largest.
func ParseMemory(raw string) (MemoryStats, bool) {
	if stats, ok := parseMemoryLabeled(raw); ok {
		return stats, true
	}
	return parseMemoryColumnar(raw)
}

func parseMemoryLabeled(raw string) (MemoryStats, bool) {
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if !strings.Contains(line, "Processor") || !strings.Contains(line, "Total:") {
			continue
		}
		var stats MemoryStats
		parts := strings.Fields(line)
		for i, part := range parts {
			if i+1 >= len(parts) {
				break
			}
			n, err := strconv.ParseInt(parts[i+1], 10, 64)
			if err != nil {
				continue
			}
			switch part {
			case "Total:":
				stats.Total = n
			case "Used:":
				stats.Used = n
			case "Free:":
				stats.Free = n
			}
		}
		if stats.Total > 0 {
			return stats, true
		}
	}
	return MemoryStats{}, false
}

func parseMemoryColumnar(raw string) (MemoryStats, bool) {
	headerSeen := false
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if strings.Contains(line, "Total(b)") || strings.Contains(line, "Used(b)") {
			headerSeen = true
			continue
		}
		if !headerSeen || !strings.Contains(line, "Processor") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 5 {
			continue
		}
		total, err1 := strconv.ParseInt(parts[2], 10, 64)
		used, err2 := strconv.ParseInt(parts[3], 10, 64)
		free, err3 := strconv.ParseInt(parts[4], 10, 64)
		if err1 != nil || err2 != nil || err3 != nil || total <= 0 {
			continue
		}
		return MemoryStats{Total: total, Used: used, Free: free}, true
	}
	return MemoryStats{}, false
}
