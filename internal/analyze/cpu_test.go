package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"routehealth/internal/parse"
)

func TestCPUFromStructured(t *testing.T) {
	verdict := New().CPU([]parse.Record{{"cpu_utilization": "12%"}}, "")
	assert.Equal(t, StatusOK, verdict.Status)
	assert.Equal(t, 12, verdict.Percent)
}

func TestCPUCriticalAtThreshold(t *testing.T) {
	verdict := New().CPU([]parse.Record{{"cpu_utilization": "70"}}, "")
	assert.Equal(t, StatusCritical, verdict.Status)
	assert.Equal(t, 70, verdict.Percent)
}

func TestCPUFallbackToRaw(t *testing.T) {
	raw := "CPU utilization for five seconds: 91%/12%; one minute: 80%"
	verdict := New().CPU(nil, raw)
	assert.Equal(t, StatusCritical, verdict.Status)
	assert.Equal(t, 91, verdict.Percent)
}

func TestCPUBadStructuredFallsBack(t *testing.T) {
	raw := "CPU utilization for five seconds: 8%"
	verdict := New().CPU([]parse.Record{{"cpu_utilization": "garbage"}}, raw)
	assert.Equal(t, StatusOK, verdict.Status)
	assert.Equal(t, 8, verdict.Percent)
}

func TestCPUUnknown(t *testing.T) {
	verdict := New().CPU(nil, "no utilization here")
	assert.Equal(t, StatusUnknown, verdict.Status)
	assert.Zero(t, verdict.Percent)
}

func TestCPUCustomThreshold(t *testing.T) {
	th := DefaultThresholds()
	th.CPUCriticalPercent = 50
	verdict := NewWithThresholds(th).CPU([]parse.Record{{"cpu_utilization": "55%"}}, "")
	assert.Equal(t, StatusCritical, verdict.Status)
}
