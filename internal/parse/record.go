// Package parse converts raw device command output into structured records.
//
// Every command family gets two tiers: a declarative template (structured
// parse) tried first, and a hand-written line-oriented fallback parser.
// Fallback parsers are total — malformed lines are skipped, never fatal —
// and pure, so reparsing the same text yields identical records.
package parse

import (
	"regexp"
	"strconv"
)

// Record is one parsed row: canonical field name to raw string value.
// Numeric fields stay strings until an analyzer interprets them, which
// keeps both tiers interchangeable.
type Record map[string]string

// Get returns the value for key, or def when absent or empty.
func (r Record) Get(key, def string) string {
	if v, ok := r[key]; ok && v != "" {
		return v
	}
	return def
}

// Int returns the value for key parsed as an integer.
func (r Record) Int(key string) (int, bool) {
	v, ok := r[key]
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ipv4Line matches lines that begin with an IPv4 literal — the row marker
// for BGP summaries, OSPF neighbor tables, and LSA entries.
var ipv4Line = regexp.MustCompile(`^\d+\.\d+\.\d+\.\d+`)
