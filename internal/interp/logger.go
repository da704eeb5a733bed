package interp

import (
	"fmt"
	"strings"

	"github.com/dekarrin/rosed"
	"github.com/google/uuid"
)

// LogMode selects which events Logger.Event actually writes: all events,
// errors only, or nothing.
type LogMode int

const (
	LogAll LogMode = iota
	LogErrors
	LogNothing
)

// Logger is the scoped, nesting-aware diagnostic sink used throughout
// evaluation. Activation is a stack frame rather than a global flag: Enter
// returns a handle whose Close (called via defer) decrements nesting on
// every exit path including error, so an aborted operation never leaves the
// logger over-indented.
type Logger struct {
	mode    LogMode
	nesting int
	sink    *strings.Builder
	RunID   string
}

// NewLogger creates a Logger writing to an in-memory sink, so tests can
// assert on logged output without capturing stdout. RunID is a fresh random
// identifier stamped on this run, letting a caller that aggregates log
// output from several interpreter runs (e.g. a batch of script files)
// correlate which lines came from which run.
func NewLogger(mode LogMode) *Logger {
	return &Logger{mode: mode, sink: &strings.Builder{}, RunID: uuid.NewString()}
}

// scope is the handle returned by Enter; Close must be deferred by the
// caller immediately after Enter returns.
type scope struct{ l *Logger }

// Enter pushes one level of nesting and returns a handle to pop it.
func (l *Logger) Enter() scope {
	l.nesting++
	return scope{l: l}
}

// Close pops the nesting level pushed by the matching Enter.
func (s scope) Close() {
	if s.l.nesting > 0 {
		s.l.nesting--
	}
}

// Event writes one diagnostic line, indented to the current nesting depth,
// honoring the logger's mode: isError events are written in every mode but
// LogNothing; informational events are written only in LogAll.
func (l *Logger) Event(isError bool, format string, args ...interface{}) {
	if l.mode == LogNothing {
		return
	}
	if !isError && l.mode == LogErrors {
		return
	}
	msg := rosed.Edit(fmt.Sprintf(format, args...)).
		WithOptions(rosed.Options{ParagraphSeparator: "\n"}).
		String()
	indent := strings.Repeat("  ", l.nesting)
	for _, line := range strings.Split(msg, "\n") {
		l.sink.WriteString(indent + line + "\n")
	}
}

// Table formats a tabular diagnostic (a determinization/minimization/monoid
// step table) at the current nesting depth.
func (l *Logger) Table(headers []string, rows [][]string) {
	if l.mode == LogNothing {
		return
	}
	data := append([][]string{headers}, rows...)
	out := rosed.Edit("").
		InsertTableOpts(0, data, 100, rosed.Options{TableHeaders: true, NoTrailingLineSeparators: true}).
		String()
	indent := strings.Repeat("  ", l.nesting)
	for _, line := range strings.Split(out, "\n") {
		l.sink.WriteString(indent + line + "\n")
	}
}

// String returns everything written to the in-memory sink so far.
func (l *Logger) String() string {
	return l.sink.String()
}

// Flush returns everything written since the last Flush (or since creation)
// and clears the sink, for callers that print incrementally (the REPL)
// rather than dumping the whole sink once at the end of a script run.
func (l *Logger) Flush() string {
	out := l.sink.String()
	l.sink.Reset()
	return out
}
