// Package input reads script lines for the interpreter's REPL, from either
// a piped stream or an interactive terminal.
package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// DirectReader reads script lines from any generic input stream directly.
// It can be used with any io.Reader but does not sanitize the input of
// control and escape sequences; use it for piped/redirected input, not a
// live terminal.
//
// DirectReader should not be constructed directly; use [NewDirectReader].
type DirectReader struct {
	r             *bufio.Reader
	blanksAllowed bool
}

// InteractiveReader reads script lines from stdin using a Go implementation
// of GNU Readline, keeping input clear of typing/editing escape sequences
// and enabling command history. Use this only when stdin is a live TTY.
//
// InteractiveReader should not be constructed directly; use
// [NewInteractiveReader].
type InteractiveReader struct {
	rl            *readline.Instance
	blanksAllowed bool
	prompt        string
}

// NewDirectReader wraps r in a buffered line reader. The returned reader
// must have Close called on it before disposal.
func NewDirectReader(r io.Reader) *DirectReader {
	return &DirectReader{
		r: bufio.NewReader(r),
	}
}

// NewInteractiveReader initializes readline against stdin. The returned
// reader must have Close called on it before disposal to tear down
// readline's terminal state.
func NewInteractiveReader() (*InteractiveReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: "> ",
	})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}

	return &InteractiveReader{
		rl:     rl,
		prompt: "> ",
	}, nil
}

// Close is a no-op for DirectReader (present so both readers share the same
// acquire/Close discipline regardless of which one a caller holds).
func (dr *DirectReader) Close() error {
	return nil
}

// Close tears down readline's terminal state.
func (ir *InteractiveReader) Close() error {
	return ir.rl.Close()
}

// ReadLine reads the next non-blank script line (unless AllowBlank was set).
// At end of input it returns "" and io.EOF; any other read error is
// returned unwrapped.
func (dr *DirectReader) ReadLine() (string, error) {
	var line string
	var err error

	for line == "" {
		line, err = dr.r.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}

		line = strings.TrimSpace(line)

		if line == "" && dr.blanksAllowed {
			return line, nil
		}
	}

	return line, nil
}

// ReadLine reads the next non-blank script line (unless AllowBlank was set)
// from the interactive terminal.
func (ir *InteractiveReader) ReadLine() (string, error) {
	var line string
	var err error

	for line == "" {
		line, err = ir.rl.Readline()
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}

		line = strings.TrimSpace(line)

		if line == "" && ir.blanksAllowed {
			return line, nil
		}
	}

	return line, nil
}

// AllowBlank sets whether a blank line is returned as-is rather than
// skipped. Off by default.
func (dr *DirectReader) AllowBlank(allow bool) {
	dr.blanksAllowed = allow
}

// AllowBlank sets whether a blank line is returned as-is rather than
// skipped. Off by default.
func (ir *InteractiveReader) AllowBlank(allow bool) {
	ir.blanksAllowed = allow
}

// SetPrompt updates the interactive prompt text.
func (ir *InteractiveReader) SetPrompt(p string) {
	ir.rl.SetPrompt(p)
	ir.prompt = p
}

// GetPrompt returns the current interactive prompt text.
func (ir *InteractiveReader) GetPrompt() string {
	return ir.prompt
}
