package result

// The three families below grade how much of a failure survives the call:
// Log records it and hands it back untouched, LogAndReplace records it and
// swaps in a coarser error, LogAndReplaceWith additionally derives the
// replacement from the failure itself. The last one earns its keep wherever
// rich internal errors must be logged in full but narrowed before crossing
// a boundary, an HTTP handler picking a status code being the usual case.

// withErr invokes observe with the error of a failed result and returns the
// error unchanged. A nil err skips observe entirely.
func withErr(err error, observe func(err error)) error {
	if err != nil {
		observe(err)
	}
	return err
}

// convertAndConsume computes the replacement from the still-live error
// first and hands the error to consume only afterwards, so the conversion
// always sees a usable value.
func convertAndConsume(err error, convert func(err error) error, consume func(err error)) error {
	if err == nil {
		return nil
	}
	converted := convert(err)
	consume(err)
	return converted
}

// LogError records message together with the error of a failed result at
// the error level and returns the error unchanged.
func LogError(err error, logger Logger, message string) error {
	return withErr(err, func(err error) { logger.LogError(message, err) })
}

// LogWarning is LogError at the warning level.
func LogWarning(err error, logger Logger, message string) error {
	return withErr(err, func(err error) { logger.LogWarning(message, err) })
}

// LogInfo is LogError at the info level.
func LogInfo(err error, logger Logger, message string) error {
	return withErr(err, func(err error) { logger.LogInfo(message, err) })
}

// LogDebug is LogError at the debug level.
func LogDebug(err error, logger Logger, message string) error {
	return withErr(err, func(err error) { logger.LogDebug(message, err) })
}

// LogTrace is LogError at the trace level.
func LogTrace(err error, logger Logger, message string) error {
	return withErr(err, func(err error) { logger.LogTrace(message, err) })
}

// LogErrorAndReplace records message with the error of a failed result at
// the error level, consumes the error and returns replacement in its place.
// A nil err stays nil, the replacement is not introduced on success.
func LogErrorAndReplace(err error, logger OwnedLogger, message string, replacement error) error {
	return LogErrorAndReplaceWith(err, logger, message, func(error) error { return replacement })
}

// LogWarningAndReplace is LogErrorAndReplace at the warning level.
func LogWarningAndReplace(err error, logger OwnedLogger, message string, replacement error) error {
	return LogWarningAndReplaceWith(err, logger, message, func(error) error { return replacement })
}

// LogInfoAndReplace is LogErrorAndReplace at the info level.
func LogInfoAndReplace(err error, logger OwnedLogger, message string, replacement error) error {
	return LogInfoAndReplaceWith(err, logger, message, func(error) error { return replacement })
}

// LogDebugAndReplace is LogErrorAndReplace at the debug level.
func LogDebugAndReplace(err error, logger OwnedLogger, message string, replacement error) error {
	return LogDebugAndReplaceWith(err, logger, message, func(error) error { return replacement })
}

// LogTraceAndReplace is LogErrorAndReplace at the trace level.
func LogTraceAndReplace(err error, logger OwnedLogger, message string, replacement error) error {
	return LogTraceAndReplaceWith(err, logger, message, func(error) error { return replacement })
}

// LogErrorAndReplaceWith records message with the error of a failed result
// at the error level and returns convert(err) in its place. convert runs
// before the logger takes ownership, so it may still inspect the error; it
// must not retain it beyond the call.
func LogErrorAndReplaceWith(err error, logger OwnedLogger, message string, convert func(err error) error) error {
	return convertAndConsume(err, convert, func(err error) { logger.LogErrorOwned(message, err) })
}

// LogWarningAndReplaceWith is LogErrorAndReplaceWith at the warning level.
func LogWarningAndReplaceWith(err error, logger OwnedLogger, message string, convert func(err error) error) error {
	return convertAndConsume(err, convert, func(err error) { logger.LogWarningOwned(message, err) })
}

// LogInfoAndReplaceWith is LogErrorAndReplaceWith at the info level.
func LogInfoAndReplaceWith(err error, logger OwnedLogger, message string, convert func(err error) error) error {
	return convertAndConsume(err, convert, func(err error) { logger.LogInfoOwned(message, err) })
}

// LogDebugAndReplaceWith is LogErrorAndReplaceWith at the debug level.
func LogDebugAndReplaceWith(err error, logger OwnedLogger, message string, convert func(err error) error) error {
	return convertAndConsume(err, convert, func(err error) { logger.LogDebugOwned(message, err) })
}

// LogTraceAndReplaceWith is LogErrorAndReplaceWith at the trace level.
func LogTraceAndReplaceWith(err error, logger OwnedLogger, message string, convert func(err error) error) error {
	return convertAndConsume(err, convert, func(err error) { logger.LogTraceOwned(message, err) })
}
