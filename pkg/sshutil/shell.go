package sshutil

import (
	"io"

	"golang.org/x/crypto/ssh"

	"routehealth/internal/errors"
)

// Shell is an interactive PTY shell channel on an SSH connection.
// It implements io.ReadWriteCloser over the remote shell's byte stream;
// there is no message framing — callers see output in arbitrary chunks.
type Shell struct {
	session *ssh.Session
	stdin   io.WriteCloser
	stdout  io.Reader
}

// OpenShell starts an interactive shell with a PTY allocated.
// Terminal-server CLIs refuse to produce prompts without one.
func (c *Client) OpenShell() (*Shell, error) {
	session, err := c.Client.NewSession()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrSSH,
			"Failed to create SSH session",
			"Connection may have been closed. Try reconnecting.")
	}

	modes := ssh.TerminalModes{
		ssh.ECHO:          0,
		ssh.TTY_OP_ISPEED: 14400,
		ssh.TTY_OP_OSPEED: 14400,
	}

	if err := session.RequestPty("vt100", 80, 0, modes); err != nil {
		session.Close()
		return nil, errors.WrapWithCode(err, errors.ErrSSH,
			"Failed to allocate PTY",
			"The remote host may not support pseudo-terminals.")
	}

	stdin, err := session.StdinPipe()
	if err != nil {
		session.Close()
		return nil, errors.Wrap(err, "Failed to open shell stdin")
	}

	stdout, err := session.StdoutPipe()
	if err != nil {
		session.Close()
		return nil, errors.Wrap(err, "Failed to open shell stdout")
	}

	if err := session.Shell(); err != nil {
		session.Close()
		return nil, errors.WrapWithCode(err, errors.ErrSSH,
			"Failed to start shell",
			"Check if your user has shell access on the remote host.")
	}

	return &Shell{
		session: session,
		stdin:   stdin,
		stdout:  stdout,
	}, nil
}

// Read reads the next chunk of shell output. Blocks until data arrives
// or the channel closes.
func (s *Shell) Read(p []byte) (int, error) {
	return s.stdout.Read(p)
}

// Write sends bytes to the remote shell.
func (s *Shell) Write(p []byte) (int, error) {
	return s.stdin.Write(p)
}

// Close tears down the shell session. Safe to call more than once.
func (s *Shell) Close() error {
	if s.session == nil {
		return nil
	}
	s.stdin.Close()
	err := s.session.Close()
	s.session = nil
	return err
}
