package doctor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubCheck struct {
	name     string
	category string
	result   CheckResult
}

func (s *stubCheck) Name() string     { return s.name }
func (s *stubCheck) Category() string { return s.category }
func (s *stubCheck) Run() CheckResult { return s.result }

func TestRunAllPreservesOrder(t *testing.T) {
	checks := []Check{
		&stubCheck{name: "a", result: CheckResult{Name: "a", Status: StatusPass}},
		&stubCheck{name: "b", result: CheckResult{Name: "b", Status: StatusFail}},
		&stubCheck{name: "c", result: CheckResult{Name: "c", Status: StatusWarn}},
	}

	results := RunAll(checks)

	assert.Len(t, results, 3)
	assert.Equal(t, "a", results[0].Name)
	assert.Equal(t, "b", results[1].Name)
	assert.Equal(t, "c", results[2].Name)
}

func TestCountByStatus(t *testing.T) {
	results := []CheckResult{
		{Status: StatusPass},
		{Status: StatusPass},
		{Status: StatusWarn},
		{Status: StatusFail},
	}

	counts := CountByStatus(results)

	assert.Equal(t, 2, counts[StatusPass])
	assert.Equal(t, 1, counts[StatusWarn])
	assert.Equal(t, 1, counts[StatusFail])
}

func TestHasFailuresAndIssues(t *testing.T) {
	clean := []CheckResult{{Status: StatusPass}}
	warned := []CheckResult{{Status: StatusPass}, {Status: StatusWarn}}
	failed := []CheckResult{{Status: StatusFail}}

	assert.False(t, HasFailures(clean))
	assert.False(t, HasFailures(warned))
	assert.True(t, HasFailures(failed))

	assert.False(t, HasIssues(clean))
	assert.True(t, HasIssues(warned))
	assert.True(t, HasIssues(failed))
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "Everything looks good", Summary([]CheckResult{{Status: StatusPass}}))
	assert.Equal(t, "1 issue found", Summary([]CheckResult{{Status: StatusFail}}))
	assert.Equal(t, "2 issues found", Summary([]CheckResult{{Status: StatusFail}, {Status: StatusWarn}}))
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "pass", StatusPass.String())
	assert.Equal(t, "warn", StatusWarn.String())
	assert.Equal(t, "fail", StatusFail.String())
	assert.Equal(t, "unknown", CheckStatus(99).String())
}
