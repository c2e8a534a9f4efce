package result

// Logger is the borrowing tier of the logging capability. Implementations
// may inspect the error for the duration of the call but must not retain it.
type Logger interface {
	LogError(message string, err error)
	LogWarning(message string, err error)
	LogInfo(message string, err error)
	LogDebug(message string, err error)
	LogTrace(message string, err error)
}

// OwnedLogger is the owning tier. Implementations receive the error for
// keeps and may retain it or hand it to another goroutine; the caller must
// not use the error after the call. Loggers that do not need ownership
// should implement Logger and be bridged with Own. Both tiers must behave
// the same for the same record.
type OwnedLogger interface {
	LogErrorOwned(message string, err error)
	LogWarningOwned(message string, err error)
	LogInfoOwned(message string, err error)
	LogDebugOwned(message string, err error)
	LogTraceOwned(message string, err error)
}

// Own adapts a borrowing Logger to the owning tier. Every owned call
// forwards to the corresponding borrowing call and then lets the error go.
func Own(l Logger) OwnedLogger {
	return owned{l}
}

type owned struct {
	l Logger
}

func (o owned) LogErrorOwned(message string, err error)   { o.l.LogError(message, err) }
func (o owned) LogWarningOwned(message string, err error) { o.l.LogWarning(message, err) }
func (o owned) LogInfoOwned(message string, err error)    { o.l.LogInfo(message, err) }
func (o owned) LogDebugOwned(message string, err error)   { o.l.LogDebug(message, err) }
func (o owned) LogTraceOwned(message string, err error)   { o.l.LogTrace(message, err) }
