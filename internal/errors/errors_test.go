package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Format(t *testing.T) {
	err := New(ErrSSH, "SSH handshake failed", "Check your keys are loaded: ssh-add -l")

	msg := err.Error()
	assert.Contains(t, msg, "✗ SSH handshake failed")
	assert.Contains(t, msg, "Check your keys are loaded")
}

func TestError_FormatWithCause(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := WrapWithCode(cause, ErrUnreachable, "Can't reach device", "Check the terminal server is up")

	msg := err.Error()
	assert.Contains(t, msg, "Can't reach device")
	assert.Contains(t, msg, "connection refused")
	assert.Contains(t, msg, "Check the terminal server is up")
}

func TestError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := Wrap(cause, "wrapped")

	assert.True(t, errors.Is(err, cause))
}

func TestIsCode(t *testing.T) {
	err := New(ErrAuth, "credentials rejected", "")

	assert.True(t, IsCode(err, ErrAuth))
	assert.False(t, IsCode(err, ErrTimeout))
	assert.False(t, IsCode(nil, ErrAuth))
	assert.False(t, IsCode(fmt.Errorf("plain"), ErrAuth))
}

func TestIsCode_Wrapped(t *testing.T) {
	inner := New(ErrTimeout, "command timed out", "")
	outer := fmt.Errorf("running show ip route: %w", inner)

	assert.True(t, IsCode(outer, ErrTimeout))
}
