package errors

import (
	"io"
	"os"
)

var (
	// errOutput is the writer terminal diagnostics are written to,
	// defaulting to os.Stderr. CheckMain uses it.
	errOutput io.Writer = os.Stderr

	// osExit ends the process. It is a variable so that tests and embedders
	// can intercept the exit.
	osExit = os.Exit

	// exitHook is a function hook that gets called before the process exits
	// due to an error. It is provided the exit code, the rendered diagnostic
	// and a captured stack.
	exitHook ExitHook = nil
)

// ExitHook defines the signature of a function that can be set as a hook to
// execute before an error exit.
type ExitHook func(code int, msg string, tracer Tracer)

// SetErrOutput redirects terminal diagnostics to writer. A nil writer
// restores os.Stderr.
func SetErrOutput(writer io.Writer) {
	if writer == nil {
		writer = os.Stderr
	}
	errOutput = writer
}

// SetExit replaces the function used to end the process. A nil exit
// restores os.Exit.
func SetExit(exit func(code int)) {
	if exit == nil {
		exit = os.Exit
	}
	osExit = exit
}

// SetExitHook sets a custom hook function to be called before the process
// exits due to an error. A nil hook removes the current one.
func SetExitHook(hook ExitHook) {
	exitHook = hook
}
