package result

import (
	"context"
	"log/slog"

	"github.com/stkali/strict/errors"
)

// LevelTrace is the slog level used for trace records, one step below
// slog.LevelDebug.
const LevelTrace = slog.LevelDebug - 4

// SlogLogger adapts a structured slog.Logger to the owning tier. The
// message becomes the record message and the joined causal chain goes under
// the "error" attribute. The adapter is owning-only: a structured record
// outlives the call, so it keeps the chain rendering instead of borrowing
// the error.
type SlogLogger struct {
	logger *slog.Logger
}

var _ OwnedLogger = SlogLogger{}

// Slog wraps l into an owning logger. A nil l logs through slog.Default().
func Slog(l *slog.Logger) SlogLogger {
	if l == nil {
		l = slog.Default()
	}
	return SlogLogger{logger: l}
}

func (s SlogLogger) log(level slog.Level, message string, err error) {
	s.logger.Log(context.Background(), level, message, "error", errors.JoinChain(err, ": "))
}

func (s SlogLogger) LogErrorOwned(message string, err error) {
	s.log(slog.LevelError, message, err)
}

func (s SlogLogger) LogWarningOwned(message string, err error) {
	s.log(slog.LevelWarn, message, err)
}

func (s SlogLogger) LogInfoOwned(message string, err error) {
	s.log(slog.LevelInfo, message, err)
}

func (s SlogLogger) LogDebugOwned(message string, err error) {
	s.log(slog.LevelDebug, message, err)
}

func (s SlogLogger) LogTraceOwned(message string, err error) {
	s.log(LevelTrace, message, err)
}
