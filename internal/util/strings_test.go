package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinOrNone(t *testing.T) {
	assert.Equal(t, "(none)", JoinOrNone(nil))
	assert.Equal(t, "(none)", JoinOrNone([]string{}))
	assert.Equal(t, "r1", JoinOrNone([]string{"r1"}))
	assert.Equal(t, "r1, r2", JoinOrNone([]string{"r1", "r2"}))
}

func TestJoinOrDefault(t *testing.T) {
	assert.Equal(t, "-", JoinOrDefault(nil, "-"))
	assert.Equal(t, "a, b", JoinOrDefault([]string{"a", "b"}, "-"))
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "device", Pluralize(1, "device", "devices"))
	assert.Equal(t, "devices", Pluralize(0, "device", "devices"))
	assert.Equal(t, "devices", Pluralize(3, "device", "devices"))
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "✗ no prompt detected", FirstLine("✗ no prompt detected\n\n  details here\n"))
	assert.Equal(t, "single", FirstLine("single"))
	assert.Equal(t, "", FirstLine("\nrest"))
}
