package errors

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// TerminationInfo describes how a terminal diagnostic is introduced: the
// prefix written before the outermost message and the separator between the
// messages of the causal chain.
type TerminationInfo interface {
	WritePrefix(w io.Writer) error
	Separator() string
}

// Multiline is the default termination policy. The prefix names the running
// application and every cause goes on its own indented line.
var Multiline TerminationInfo = multiline{}

type multiline struct{}

var (
	entryOnce sync.Once
	entryName string
)

// entryPoint resolves the invocation name of the running process once. The
// process arguments never change, so the cached value stays valid.
func entryPoint() string {
	entryOnce.Do(func() {
		if len(os.Args) > 0 {
			entryName = os.Args[0]
		}
	})
	return entryName
}

func (multiline) WritePrefix(w io.Writer) error {
	if name := entryPoint(); name != "" {
		_, err := fmt.Fprintf(w, "Application %s failed: ", name)
		return err
	}
	_, err := io.WriteString(w, "Application failed: ")
	return err
}

func (multiline) Separator() string {
	return "\n\tcaused by: "
}

// TerminalError decorates an error with a TerminationInfo so that its
// message names the application and lays the causal chain out for a human
// reading a terminal.
type TerminalError struct {
	boxed *BoxedError
	info  TerminationInfo
}

// Terminal wraps err for terminal reporting with the Multiline policy.
// A nil err is not a failure and yields nil, an error that is already
// terminal is returned unchanged.
func Terminal(err error) *TerminalError {
	return TerminalWith(err, Multiline)
}

// TerminalWith is Terminal with a caller-chosen policy.
func TerminalWith(err error, info TerminationInfo) *TerminalError {
	if err == nil {
		return nil
	}
	if terminal, ok := err.(*TerminalError); ok {
		return terminal
	}
	return &TerminalError{boxed: Box(err), info: info}
}

func (t *TerminalError) Error() string {
	var sb strings.Builder
	_ = t.info.WritePrefix(&sb)
	sb.WriteString(JoinChain(t.boxed, t.info.Separator()))
	return sb.String()
}

// Unwrap exposes the decorated error so Is and As see through the reporter.
func (t *TerminalError) Unwrap() error {
	return t.boxed
}

var _ error = (*TerminalError)(nil)

// CheckMain reports err and ends the process with status 1. It is meant to
// be the last call of a main function: a nil err returns silently, anything
// else is rendered once with the terminal policy on the error output before
// the exit.
func CheckMain(err error) {
	if err == nil {
		return
	}
	msg := Terminal(err).Error()
	_, _ = fmt.Fprintln(errOutput, msg)
	if exitHook != nil {
		exitHook(1, msg, Capture(3))
	}
	osExit(1)
}
