package parse

import (
	"regexp"
	"strings"
)

var interfaceName = regexp.MustCompile(`^[A-Za-z][\w/.:-]*\d`)

// ParseInterfaceBrief extracts one record per interface row from
// "show ip interface brief" output. The Status column may be the
// two-word "administratively down", so status is everything between
// the Method column and the trailing Protocol column.
func ParseInterfaceBrief(raw string) []Record {
	var records []Record
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if !interfaceName.MatchString(line) {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 6 {
			continue
		}
		records = append(records, Record{
			"interface": parts[0],
			"ipaddr":    parts[1],
			"ok":        parts[2],
			"method":    parts[3],
			"status":    strings.Join(parts[4:len(parts)-1], " "),
			"protocol":  parts[len(parts)-1],
		})
	}
	return records
}
