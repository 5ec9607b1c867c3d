package parse

import (
	"regexp"
	"strings"
)

// Template declares a structured extraction for one command family:
// a row regexp whose capture groups map positionally onto Fields.
// Templates cover row-per-line outputs; inherently stateful families
// (BGP neighbor detail, OSPF database) have no template and always go
// through their dedicated parsers.
type Template struct {
	Command string   // command prefix this template applies to
	Fields  []string // field name per capture group
	Row     *regexp.Regexp
}

// Apply runs the template over raw output, one Record per matching line.
func (t *Template) Apply(raw string) []Record {
	var records []Record
	for _, line := range strings.Split(raw, "\n") {
		m := t.Row.FindStringSubmatch(strings.TrimRight(line, "\r"))
		if m == nil {
			continue
		}
		rec := make(Record, len(t.Fields))
		for i, f := range t.Fields {
			rec[f] = m[i+1]
		}
		records = append(records, rec)
	}
	return records
}

// templates is the registry, matched by command prefix.
var templates = []*Template{
	{
		Command: "show ip interface brief",
		Fields:  []string{"interface", "ipaddr", "ok", "method", "status", "protocol"},
		Row: regexp.MustCompile(
			`^(\S+)\s+(\d+\.\d+\.\d+\.\d+|unassigned)\s+(YES|NO)\s+(\S+)\s+(up|down|administratively down)\s+(up|down)\s*$`),
	},
	{
		Command: "show ip route",
		Fields:  []string{"protocol", "network", "nexthop_ip"},
		Row: regexp.MustCompile(
			`^([A-Za-z]\*?(?:\s[A-Z]{1,2})?)\s+(\d+\.\d+\.\d+\.\d+(?:/\d+)?)(?:.*?via (\d+\.\d+\.\d+\.\d+))?`),
	},
	{
		Command: "show processes cpu",
		Fields:  []string{"cpu_utilization"},
		Row: regexp.MustCompile(
			`^CPU utilization for five seconds: (\d+%?)`),
	},
	{
		Command: "show process memory",
		Fields:  []string{"pool", "total", "used", "free"},
		Row: regexp.MustCompile(
			`^(\S+) Pool Total:\s*(\d+)\s+Used:\s*(\d+)\s+Free:\s*(\d+)`),
	},
	{
		Command: "show ip bgp summary",
		Fields: []string{"neighbor", "version", "as", "msg_rcvd", "msg_sent",
			"tbl_ver", "inq", "outq", "uptime", "state_pfxrcd"},
		Row: regexp.MustCompile(
			`^(\d+\.\d+\.\d+\.\d+)\s+(\d+)\s+(\d+)\s+(\d+)\s+(\d+)\s+(\d+)\s+(\d+)\s+(\d+)\s+(\S+)\s+(\S+)\s*$`),
	},
	{
		Command: "show ip ospf neighbor",
		Fields:  []string{"neighbor_id", "priority", "state", "dead_time", "address", "interface"},
		Row: regexp.MustCompile(
			`^(\d+\.\d+\.\d+\.\d+)\s+(\d+)\s+(\S+)\s+(\d{2}:\d{2}:\d{2})\s+(\d+\.\d+\.\d+\.\d+)\s+(\S+)\s*$`),
	},
	{
		Command: "show ip ospf interface brief",
		Fields:  []string{"interface", "pid", "area", "address", "cost", "state", "neighbors"},
		Row: regexp.MustCompile(
			`^([A-Za-z][\w/.]*)\s+(\d+)\s+(\S+)\s+(\S+)\s+(\d+)\s+(\S+)\s+(\d+)(?:/\d+)?\s*$`),
	},
}

// Structured attempts the template tier for a command. Returns the
// records and true when a template exists and yielded at least one row;
// otherwise false, signaling the caller to use the fallback parser.
func Structured(cmd, raw string) ([]Record, bool) {
	if raw == "" {
		return nil, false
	}
	lower := strings.ToLower(strings.TrimSpace(cmd))
	var tpl *Template
	for _, t := range templates {
		if strings.HasPrefix(lower, t.Command) {
			// Longest matching prefix wins: "show ip ospf interface
			// brief" must not resolve to "show ip ospf neighbor".
			if tpl == nil || len(t.Command) > len(tpl.Command) {
				tpl = t
			}
		}
	}
	if tpl == nil {
		return nil, false
	}
	records := tpl.Apply(raw)
	if len(records) == 0 {
		return nil, false
	}
	return records, true
}
