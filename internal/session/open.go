package session

import (
	"net"
	"strings"
	"time"

	"routehealth/internal/errors"
	"routehealth/pkg/sshutil"
)

// Target identifies one device behind a terminal server.
type Target struct {
	Device       string // device name, used in logs and errors
	Proxy        string // terminal server host (alias, ip, or user@host:port)
	ProxyCommand string // command typed at the terminal server to reach the device console
}

// Credentials authenticate against the terminal server.
type Credentials struct {
	User     string
	Password string

	// StrictHostKey verifies the terminal server against known_hosts.
	// Lab terminal servers regenerate keys constantly, so this defaults off.
	StrictHostKey bool
}

// ConnectOptions bundles everything Open needs beyond the per-command
// Options embedded in the resulting Session.
type ConnectOptions struct {
	Credentials Credentials

	// ProbeTimeout bounds the TCP reachability probe (default 5s).
	ProbeTimeout time.Duration

	// PromptTimeout bounds the wait for the device's first prompt after
	// the proxy command (default 15s).
	PromptTimeout time.Duration

	Session Options
}

func (o *ConnectOptions) withDefaults() ConnectOptions {
	out := *o
	if out.ProbeTimeout == 0 {
		out.ProbeTimeout = 5 * time.Second
	}
	if out.PromptTimeout == 0 {
		out.PromptTimeout = 15 * time.Second
	}
	return out
}

// nudgeInterval is how often a newline is sent while waiting for the
// first prompt. Console lines through a terminal server frequently need
// a keypress before they present one.
const nudgeInterval = 300 * time.Millisecond

// Open connects to a device through its terminal server and returns a
// Session positioned at the device prompt with paging disabled.
//
// Failure modes: errors.ErrUnreachable when the TCP probe fails or no
// prompt appears, errors.ErrAuth when the terminal server rejects the
// credentials. Both are fatal for the device; neither is retried here.
func Open(target Target, opts ConnectOptions) (*Session, error) {
	opts = opts.withDefaults()
	log := opts.Session.Log

	// Fail fast on a dead TCP path before paying for the SSH handshake.
	addr := sshutil.ResolveAddress(target.Proxy)
	conn, err := net.DialTimeout("tcp", addr, opts.ProbeTimeout)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrUnreachable,
			"Terminal server at "+addr+" is not reachable",
			"Check the proxy address in the inventory and your network path.")
	}
	conn.Close()

	client, err := sshutil.Dial(target.Proxy, sshutil.Options{
		User:                  opts.Credentials.User,
		Password:              opts.Credentials.Password,
		Timeout:               opts.ProbeTimeout,
		StrictHostKeyChecking: opts.Credentials.StrictHostKey,
	})
	if err != nil {
		return nil, err
	}

	shell, err := client.OpenShell()
	if err != nil {
		client.Close()
		return nil, err
	}

	s := New(shell, client, opts.Session)

	// Hop from the terminal server to the device console.
	if _, err := s.ch.Write([]byte(target.ProxyCommand + "\n")); err != nil {
		s.Close()
		return nil, errors.Wrap(err, "Failed to send proxy command for "+target.Device)
	}

	if !s.waitForPrompt(opts.PromptTimeout) {
		s.Close()
		return nil, errors.New(errors.ErrUnreachable,
			"No prompt detected from "+target.Device,
			"The console line may be occupied or the device powered off.")
	}

	if log != nil {
		log.Debug("%s: prompt detected, disabling paging", target.Device)
	}

	// Without this, long outputs stall on "--More--" and every read
	// times out.
	if _, err := s.RunWithTimeout("terminal length 0", 2*time.Second); err != nil {
		s.Close()
		return nil, err
	}

	return s, nil
}

// waitForPrompt accumulates output until a prompt terminator appears
// anywhere in the buffer, nudging the console with a newline at a fixed
// cadence. Unlike command reads, the initial hop may emit banners and
// login text in any shape, so the whole buffer is tested.
func (s *Session) waitForPrompt(timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	var buf strings.Builder

	for time.Now().Before(deadline) {
		timer := time.NewTimer(nudgeInterval)
		select {
		case chunk, ok := <-s.recv:
			timer.Stop()
			if !ok {
				return false
			}
			buf.Write(chunk)
			if strings.ContainsAny(buf.String(), promptTerminators) {
				return true
			}
		case <-timer.C:
			_, _ = s.ch.Write([]byte("\n"))
		}
	}
	return false
}
