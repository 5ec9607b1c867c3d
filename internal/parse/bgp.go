package parse

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	bgpNeighborMarker = regexp.MustCompile(`BGP neighbor is (\d+\.\d+\.\d+\.\d+)`)
	bgpRemoteAS       = regexp.MustCompile(`remote AS (\d+)`)
	bgpState          = regexp.MustCompile(`BGP state = (\w+)`)
	bgpUpFor          = regexp.MustCompile(`up for (\S+)`)
	bgpConnections    = regexp.MustCompile(`Connections established (\d+); dropped (\d+)`)
	bgpPrefixCount    = regexp.MustCompile(`(\d+)\s+prefixes`)
)

// ParseBGPSummary extracts the neighbor table from "show ip bgp summary".
// A neighbor row starts with an IPv4 literal and carries at least ten
// fields; the tenth is either a prefix count (session established) or a
// textual state.
func ParseBGPSummary(raw string) []Record {
	var records []Record
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if !ipv4Line.MatchString(line) {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 10 {
			continue
		}
		rec := Record{
			"neighbor":     parts[0],
			"version":      parts[1],
			"as":           parts[2],
			"msg_rcvd":     parts[3],
			"msg_sent":     parts[4],
			"tbl_ver":      parts[5],
			"inq":          parts[6],
			"outq":         parts[7],
			"uptime":       parts[8],
			"state_pfxrcd": parts[9],
		}
		if n, err := strconv.Atoi(parts[9]); err == nil {
			rec["state"] = "Established"
			rec["prefixes_received"] = strconv.Itoa(n)
		} else {
			rec["state"] = parts[9]
			rec["prefixes_received"] = "0"
		}
		records = append(records, rec)
	}
	return records
}

// ParseBGPNeighbors is a stateful scan over "show ip bgp neighbors"
// output. A "BGP neighbor is <ip>" line opens a record; labeled lines
// update the current record until the next marker.
func ParseBGPNeighbors(raw string) []Record {
	var records []Record
	var current Record

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)

		if strings.HasPrefix(line, "BGP neighbor is") {
			if m := bgpNeighborMarker.FindStringSubmatch(line); m != nil {
				if current != nil {
					records = append(records, current)
				}
				current = Record{
					"neighbor":          m[1],
					"route_flaps":       "0",
					"prefixes_received": "0",
				}
			}
		}
		if current == nil {
			continue
		}

		if strings.Contains(line, "remote AS") {
			if m := bgpRemoteAS.FindStringSubmatch(line); m != nil {
				current["remote_as"] = m[1]
			}
		}
		if strings.Contains(line, "BGP state =") {
			if m := bgpState.FindStringSubmatch(line); m != nil {
				current["state"] = m[1]
			}
			if m := bgpUpFor.FindStringSubmatch(line); m != nil {
				current["uptime"] = m[1]
			}
		}
		if strings.Contains(line, "Connections established") {
			if m := bgpConnections.FindStringSubmatch(line); m != nil {
				// Dropped connections stand in for session flaps.
				current["route_flaps"] = m[2]
			}
		}
		if strings.Contains(line, "Last reset") {
			current["last_reset"] = line
		}
		lower := strings.ToLower(line)
		if strings.Contains(lower, "prefixes") && strings.Contains(lower, "accepted") {
			if m := bgpPrefixCount.FindStringSubmatch(line); m != nil {
				current["prefixes_received"] = m[1]
			}
		}
	}
	if current != nil {
		records = append(records, current)
	}
	return records
}
