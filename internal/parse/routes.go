package parse

import (
	"regexp"
	"strings"
)

// routeLine matches a routing-table entry: a protocol code (optionally
// starred or followed by a subcode) and a destination network, with an
// optional next hop after "via".
var routeLine = regexp.MustCompile(
	`^([A-Za-z]\*?(?:\s[A-Z]{1,2})?)\s+(\d+\.\d+\.\d+\.\d+(?:/\d+)?)(?:.*?via (\d+\.\d+\.\d+\.\d+))?`)

// ParseRoutes extracts route entries from "show ip route" output.
// Callers mostly want the count; the per-route fields are best effort.
func ParseRoutes(raw string) []Record {
	var records []Record
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		m := routeLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		records = append(records, Record{
			"protocol":   strings.TrimSpace(m[1]),
			"network":    m[2],
			"nexthop_ip": m[3],
		})
	}
	return records
}
