package session

import "strings"

// stripState tracks progress through the accumulated buffer while
// separating command echo and trailing prompt from the real output.
type stripState int

const (
	awaitingEcho stripState = iota
	readingBody
	promptSeen
)

// StripEchoAndPrompt extracts a command's output from the raw buffer.
// The first line is the echoed command and is always dropped; the last
// non-blank line, if it contains prompt text, is dropped too. Handles
// empty buffers, prompt-only exchanges, and CRLF line endings.
func StripEchoAndPrompt(raw string) string {
	if raw == "" {
		return ""
	}

	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")

	// Trailing blank lines are artifacts of chunked reads and the
	// prompt's leading newline; ignore them up front so the prompt check
	// sees the real last line.
	end := len(lines)
	for end > 0 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	lines = lines[:end]

	state := awaitingEcho
	var body []string
	for i, line := range lines {
		switch state {
		case awaitingEcho:
			// Echo of the command we sent; never part of the output.
			state = readingBody
		case readingBody:
			if i == len(lines)-1 && isPromptLine(line) {
				state = promptSeen
				continue
			}
			body = append(body, line)
		}
	}

	for len(body) > 0 && strings.TrimSpace(body[len(body)-1]) == "" {
		body = body[:len(body)-1]
	}

	return strings.Join(body, "\n")
}

// isPromptLine reports whether a line carries bare prompt text. The
// prompt is hostname plus a terminator character; only the final line of
// an exchange is ever tested against this.
func isPromptLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	return strings.ContainsAny(trimmed, promptTerminators)
}
