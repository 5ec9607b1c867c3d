package parse

import (
	"regexp"
	"strconv"
	"strings"
)

// backboneArea is assumed when an output omits the area column.
const backboneArea = "0.0.0.0"

var (
	lsaHeader     = regexp.MustCompile(`(\w+(?:\s+\w+)*)\s+Link States.*Area\s+([0-9.]+)`)
	ospfIntfStart = regexp.MustCompile(`^[A-Za-z]+[0-9/]+`)
)

// ParseOSPFNeighbors extracts the neighbor table from
// "show ip ospf neighbor": one row per IPv4-led line with at least six
// fields. The area is not part of this output and defaults to the
// backbone.
func ParseOSPFNeighbors(raw string) []Record {
	var records []Record
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if !ipv4Line.MatchString(line) {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 6 {
			continue
		}
		records = append(records, Record{
			"neighbor_id": parts[0],
			"priority":    parts[1],
			"state":       parts[2],
			"dead_time":   parts[3],
			"address":     parts[4],
			"interface":   parts[5],
			"area":        backboneArea,
		})
	}
	return records
}

// DatabaseStats summarizes "show ip ospf database" output.
type DatabaseStats struct {
	Total  int
	ByType map[string]int
	ByArea map[string]int
}

// ParseOSPFDatabase counts LSA entries per type and area. A
// "<Type> Link States (Area <id>)" header declares the type/area for
// the IPv4-led entry lines that follow it, until the next header.
func ParseOSPFDatabase(raw string) DatabaseStats {
	stats := DatabaseStats{
		ByType: make(map[string]int),
		ByArea: make(map[string]int),
	}
	var curType, curArea string

	for _, line := range strings.Split(raw, "\n") {
		if strings.Contains(line, "Link States") {
			if m := lsaHeader.FindStringSubmatch(line); m != nil {
				curType = strings.TrimSpace(m[1])
				curArea = m[2]
				if _, ok := stats.ByType[curType]; !ok {
					stats.ByType[curType] = 0
				}
				if _, ok := stats.ByArea[curArea]; !ok {
					stats.ByArea[curArea] = 0
				}
			}
			continue
		}
		trimmed := strings.TrimSpace(line)
		if curType == "" || !ipv4Line.MatchString(trimmed) {
			continue
		}
		if len(strings.Fields(trimmed)) < 3 {
			continue
		}
		stats.ByType[curType]++
		if curArea != "" {
			stats.ByArea[curArea]++
		}
		stats.Total++
	}
	return stats
}

// ParseOSPFInterfaces extracts rows from "show ip ospf interface brief":
// interface name, area, state and neighbor count, positionally.
func ParseOSPFInterfaces(raw string) []Record {
	var records []Record
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if !ospfIntfStart.MatchString(line) {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 4 {
			continue
		}
		neighbors := "0"
		if _, err := strconv.Atoi(parts[3]); err == nil {
			neighbors = parts[3]
		}
		records = append(records, Record{
			"interface": parts[0],
			"area":      parts[1],
			"state":     parts[2],
			"neighbors": neighbors,
		})
	}
	return records
}

// ParseDeadTime converts an "HH:MM:SS" dead-timer string to seconds.
func ParseDeadTime(s string) (int, bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, false
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	sec, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, false
	}
	return h*3600 + m*60 + sec, true
}
