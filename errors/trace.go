package errors

import (
	"bytes"
	"fmt"
	"io"
	"runtime"
)

// Tracer is a captured stack trace. It can print itself or hand the raw
// frames to a visitor.
type Tracer interface {
	Stack(w io.Writer)
	Frames(handle func(frame runtime.Frame) bool)
	fmt.Stringer
}

// depth defines the maximum depth of the stack trace to capture.
// It is set to 2^5 (32) to avoid capturing too much stack information.
const depth = 1 << 5

// trace represents a slice of program counters that can be used to
// reconstruct a stack trace.
type trace []uintptr

var _ Tracer = (*trace)(nil)

// Capture records the stack of the calling goroutine, skipping skip frames.
// skip counts like runtime.Callers: 0 names runtime.Callers itself and 2 the
// caller of Capture.
func Capture(skip int) Tracer {
	pcs := make(trace, depth, depth)
	count := runtime.Callers(skip, pcs[:])
	return pcs[:count]
}

// Frames iterates over the captured frames from the innermost outward and
// calls handle for each. Returning false stops the iteration early. If
// handle is nil the frames are printed to the error output.
func (t trace) Frames(handle func(frame runtime.Frame) bool) {
	if handle == nil {
		handle = defaultFrameHandle
	}
	fs := runtime.CallersFrames(t)
	for {
		frame, more := fs.Next()
		if frame.Function != "" && !handle(frame) {
			return
		}
		if !more {
			return
		}
	}
}

func defaultFrameHandle(frame runtime.Frame) bool {
	_, _ = fmt.Fprintf(errOutput, "    %s(...)\n", frame.Function)
	_, _ = fmt.Fprintf(errOutput, "         %s:%d\n", frame.File, frame.Line)
	return true
}

// Stack writes a formatted stack trace to the provided io.Writer. Every
// frame prints the function name and its file and line.
func (t trace) Stack(w io.Writer) {
	_, _ = fmt.Fprintln(w, "Traceback:")
	t.Frames(func(frame runtime.Frame) bool {
		_, _ = fmt.Fprintf(w, "    %s(...)\n", frame.Function)
		_, _ = fmt.Fprintf(w, "         %s:%d\n", frame.File, frame.Line)
		return true
	})
}

// String implements fmt.Stringer.
func (t trace) String() string {
	buf := &bytes.Buffer{}
	t.Stack(buf)
	return buf.String()
}

// StackTrace writes the traceback information of the caller to the
// specified io.Writer.
func StackTrace(w io.Writer) {
	Capture(3).Stack(w)
}

// Traceback returns the traceback of the caller as a string.
func Traceback() string {
	return Capture(3).String()
}
