package session

import (
	"strings"
	"time"
)

// TimeoutRule assigns a read timeout to commands whose text contains
// Pattern (case-insensitive substring match).
type TimeoutRule struct {
	Pattern string
	Timeout time.Duration
}

// DefaultTimeoutRules gives commands that consult external routing peers
// more time than local-state commands. BGP output depends on remote
// speakers and table size, so it routinely outlasts the local default.
func DefaultTimeoutRules() []TimeoutRule {
	return []TimeoutRule{
		{Pattern: "bgp", Timeout: 8 * time.Second},
	}
}

// TimeoutFor resolves the timeout for a command against a rule table.
// First matching rule wins; def applies when nothing matches.
func TimeoutFor(cmd string, rules []TimeoutRule, def time.Duration) time.Duration {
	lower := strings.ToLower(cmd)
	for _, r := range rules {
		if r.Pattern != "" && strings.Contains(lower, strings.ToLower(r.Pattern)) {
			return r.Timeout
		}
	}
	return def
}
