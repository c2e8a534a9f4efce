package result

import (
	"fmt"
	"io"
	"os"

	"github.com/stkali/strict/errors"
)

// exitCode is the status the unwrap-or-exit family ends the process with.
// It stays distinct from 1 so that scripts can tell an unwrapped failure
// from every other kind of death.
const exitCode = 2

var (
	// errOutput receives the failure lines of the unwrap-or-exit family,
	// defaulting to os.Stderr.
	errOutput io.Writer = os.Stderr

	// osExit ends the process. It is a variable so that tests and embedders
	// can intercept the exit.
	osExit = os.Exit

	// exitHook is called with the exit code, the joined chain of the
	// failure and a captured stack right before the process exits. nil
	// disables it.
	exitHook errors.ExitHook
)

// SetErrOutput redirects unwrap failure lines to writer. A nil writer
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

// SetExitHook sets a hook to observe unwrap failures before the process
// exits. A nil hook removes the current one.
func SetExitHook(hook errors.ExitHook) {
	exitHook = hook
}

// UnwrapOrExitCustom returns value when err is nil. On failure it hands err
// to printer and ends the process with status 2; it does not return on that
// path.
func UnwrapOrExitCustom[T any](value T, err error, printer func(err error)) T {
	if err == nil {
		return value
	}
	printer(err)
	if exitHook != nil {
		exitHook(exitCode, errors.JoinChain(err, ": "), errors.Capture(3))
	}
	osExit(exitCode)
	// Reached only when the exit seam is replaced in tests.
	return value
}

// defaultPrinter writes the failure as "Error: <chain>" with the causes
// separated by ": ".
func defaultPrinter(err error) {
	_, _ = fmt.Fprintf(errOutput, "Error: %s\n", errors.JoinChain(err, ": "))
}

// UnwrapOrExit returns value when err is nil. On failure it prints the
// whole causal chain on one line and exits:
//
//	Error: open config: permission denied
//
// The intended call shape wraps a fallible expression directly:
//
//	port := result.UnwrapOrExit(strconv.Atoi(os.Args[1]))
func UnwrapOrExit[T any](value T, err error) T {
	return UnwrapOrExitCustom(value, err, defaultPrinter)
}

// UnwrapOrExitDisplay is UnwrapOrExit rendering only the outermost message
// of the failure, without its causes.
func UnwrapOrExitDisplay[T any](value T, err error) T {
	return UnwrapOrExitCustom(value, err, func(err error) {
		_, _ = fmt.Fprintf(errOutput, "Error: %s\n", err)
	})
}

// UnwrapOrExitDebug is UnwrapOrExit rendering the full internal
// representation of the failure, meant for developers rather than users.
func UnwrapOrExitDebug[T any](value T, err error) T {
	return UnwrapOrExitCustom(value, err, func(err error) {
		_, _ = fmt.Fprintf(errOutput, "Error: %#v\n", err)
	})
}

// UnwrapOrExitLog is UnwrapOrExit reporting the failure through logger
// instead of the error output.
func UnwrapOrExitLog[T any](value T, err error, logger OwnedLogger) T {
	return UnwrapOrExitCustom(value, err, func(err error) {
		logger.LogErrorOwned("Error", err)
	})
}

// Check is the unwrap of a result that carries no value: a nil err returns
// silently, anything else prints the default failure line and exits with
// status 2.
func Check(err error) {
	_ = UnwrapOrExitCustom(struct{}{}, err, defaultPrinter)
}
