package parse

import (
	"strconv"
	"strings"
)

// ParseCPUUtilization extracts the five-second CPU percentage from
// "show processes cpu" output. Handles both the "five seconds: 5%/0%"
// form and a bare single value; the first number after the colon wins.
// Returns false when no utilization line yields a number.
func ParseCPUUtilization(raw string) (int, bool) {
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if !strings.Contains(line, "CPU utilization") {
			continue
		}
		_, rest, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		val, _, _ := strings.Cut(rest, "%")
		if slash, _, ok := strings.Cut(val, "/"); ok {
			val = slash
		}
		pct, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			continue
		}
		return pct, true
	}
	return 0, false
}
