package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCPUUtilization(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
		ok   bool
	}{
		{
			name: "triple form",
			raw:  "CPU utilization for five seconds: 12%/3%; one minute: 9%; five minutes: 8%",
			want: 12,
			ok:   true,
		},
		{
			name: "single value",
			raw:  "CPU utilization for five seconds: 45%",
			want: 45,
			ok:   true,
		},
		{
			name: "slash without percent signs",
			raw:  "CPU utilization for five seconds: 7/2; one minute: 5",
			want: 7,
			ok:   true,
		},
		{
			name: "buried in process listing",
			raw:  " PID Runtime(ms)     Invoked      uSecs\nCPU utilization for five seconds: 91%/12%\n   1         4        1234       3",
			want: 91,
			ok:   true,
		},
		{
			name: "no utilization line",
			raw:  " PID Runtime(ms)     Invoked      uSecs",
			ok:   false,
		},
		{
			name: "empty",
			raw:  "",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseCPUUtilization(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
