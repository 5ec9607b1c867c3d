// Package session drives an interactive CLI over an unframed byte stream.
//
// Network devices reached through a terminal server expose no message
// boundaries: command output arrives in arbitrary chunks, prefixed by the
// echoed command and terminated only by the device prompt reappearing.
// Session turns that stream into a synchronous run-command-get-output API
// using prompt detection with a quiescence window.
package session

import (
	"io"
	"strings"
	"sync"
	"time"

	"routehealth/internal/errors"
	"routehealth/internal/logger"
)

// chunkSize matches the largest read the underlying SSH channel delivers.
const chunkSize = 64 * 1024

// maxDrainAttempts bounds the pre-command drain loop: this many consecutive
// empty polls means the channel has gone quiet.
const maxDrainAttempts = 10

// promptTerminators are the characters a device prompt ends with.
// User exec mode ends with '>', privileged exec with '#'.
const promptTerminators = "#>"

// Channel is the byte-stream transport the driver runs over.
// *sshutil.Shell satisfies it; tests use scripted in-memory channels.
type Channel interface {
	io.ReadWriteCloser
}

// Session owns one interactive channel to one device. It is not safe for
// concurrent use: commands on a device are strictly sequential because
// each command's output discipline depends on the previous one having
// drained.
type Session struct {
	ch   Channel
	opts Options

	// recv carries chunks from the pump goroutine; closed when the
	// channel hits EOF or a read error.
	recv chan []byte

	owned     io.Closer // underlying connection closed alongside the channel
	closeOnce sync.Once
	closeErr  error

	log logger.Logger
}

// Options tunes the prompt-detection and timeout behavior of a Session.
type Options struct {
	// DefaultTimeout bounds a single command's output read (default 6s).
	DefaultTimeout time.Duration

	// Rules override DefaultTimeout for commands matching a pattern.
	// First match wins. Commands that consult remote peers (BGP) need
	// more headroom than local-state show commands.
	Rules []TimeoutRule

	// Quiescence is how long to wait after seeing a prompt terminator
	// for trailing bytes (default 200ms).
	Quiescence time.Duration

	// DrainIdle is the pause between empty polls while draining residue
	// before a command (default 50ms).
	DrainIdle time.Duration

	Log logger.Logger
}

func (o *Options) withDefaults() Options {
	out := *o
	if out.DefaultTimeout == 0 {
		out.DefaultTimeout = 6 * time.Second
	}
	if out.Rules == nil {
		out.Rules = DefaultTimeoutRules()
	}
	if out.Quiescence == 0 {
		out.Quiescence = 200 * time.Millisecond
	}
	if out.DrainIdle == 0 {
		out.DrainIdle = 50 * time.Millisecond
	}
	if out.Log == nil {
		out.Log = logger.Noop()
	}
	return out
}

// New wraps an already-open channel in a Session and starts the read pump.
// owned, if non-nil, is closed together with the channel (the SSH client
// that carries it).
func New(ch Channel, owned io.Closer, opts Options) *Session {
	s := &Session{
		ch:    ch,
		opts:  opts.withDefaults(),
		recv:  make(chan []byte, 64),
		owned: owned,
	}
	s.log = s.opts.Log
	go s.pump()
	return s
}

// pump reads the channel into the recv queue until EOF or error.
// Chunk boundaries are whatever the transport delivers; the prompt
// detector depends on seeing them as-is.
func (s *Session) pump() {
	defer close(s.recv)
	buf := make([]byte, chunkSize)
	for {
		n, err := s.ch.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			s.recv <- chunk
		}
		if err != nil {
			if err != io.EOF {
				s.log.Debug("channel read ended: %v", err)
			}
			return
		}
	}
}

// Run executes one command and returns its output with the echoed command
// and the trailing prompt stripped.
//
// Partial-result policy: if the prompt never appears before the command's
// timeout, whatever accumulated is returned with a nil error — analyzers
// treat empty text as "no data", not as a device failure. A non-nil error
// means the channel itself is gone.
func (s *Session) Run(cmd string) (string, error) {
	timeout := TimeoutFor(cmd, s.opts.Rules, s.opts.DefaultTimeout)
	return s.RunWithTimeout(cmd, timeout)
}

// RunWithTimeout is Run with an explicit per-command timeout.
func (s *Session) RunWithTimeout(cmd string, timeout time.Duration) (string, error) {
	// Residue from the previous exchange would contaminate this
	// command's output, so drain before sending.
	s.drain()

	if _, err := s.ch.Write([]byte(cmd + "\n")); err != nil {
		return "", errors.WrapWithCode(err, errors.ErrSSH,
			"Channel write failed for: "+cmd,
			"The session was likely torn down. Reconnect to the device.")
	}

	raw, closed := s.readUntilPrompt(timeout)
	out := StripEchoAndPrompt(raw)
	if closed && out == "" {
		return "", errors.New(errors.ErrSSH,
			"Channel closed while running: "+cmd,
			"Reconnect to the device.")
	}
	return out, nil
}

// readUntilPrompt accumulates chunks until a prompt terminator shows up in
// the most recently read chunk, then waits one quiescence interval and
// sweeps trailing bytes. Returns on timeout with whatever accumulated.
// The second return is true if the channel closed during the read.
func (s *Session) readUntilPrompt(timeout time.Duration) (string, bool) {
	var out strings.Builder
	deadline := time.Now().Add(timeout)

	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			s.log.Debug("prompt not seen within %s, returning partial output", timeout)
			return out.String(), false
		}

		timer := time.NewTimer(remaining)
		select {
		case chunk, ok := <-s.recv:
			timer.Stop()
			if !ok {
				return out.String(), true
			}
			out.Write(chunk)
			// Terminator must be in the latest chunk, not just anywhere
			// in the buffer: command bodies legitimately contain '>'.
			if strings.ContainsAny(string(chunk), promptTerminators) {
				time.Sleep(s.opts.Quiescence)
				closed := s.sweepPending(&out)
				return out.String(), closed
			}
		case <-timer.C:
			return out.String(), false
		}
	}
}

// sweepPending collects any chunks already queued without blocking.
// Returns true if the channel is closed.
func (s *Session) sweepPending(out *strings.Builder) bool {
	for {
		select {
		case chunk, ok := <-s.recv:
			if !ok {
				return true
			}
			out.Write(chunk)
		default:
			return false
		}
	}
}

// drain discards residual unread bytes, declaring the channel quiet after
// maxDrainAttempts consecutive empty polls. Receiving data resets the
// counter: a device mid-burst must go fully quiet before the next command.
func (s *Session) drain() {
	attempts := 0
	for attempts < maxDrainAttempts {
		select {
		case _, ok := <-s.recv:
			if !ok {
				return
			}
			attempts = 0
		default:
			attempts++
			time.Sleep(s.opts.DrainIdle)
		}
	}
}

// Close sends a graceful exit and releases the channel and any owned
// connection. Safe on every exit path; later calls return the first result.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		// Best effort: the device side cleans up its vty line on "exit".
		_, _ = s.ch.Write([]byte("exit\n"))
		time.Sleep(s.opts.Quiescence)
		s.closeErr = s.ch.Close()
		if s.owned != nil {
			if err := s.owned.Close(); err != nil && s.closeErr == nil {
				s.closeErr = err
			}
		}
	})
	return s.closeErr
}
