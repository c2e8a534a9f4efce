package result

import (
	"github.com/stkali/strict/errors"
	"github.com/stkali/strict/log"
)

// GlobalLogger logs through the package default logger of the module's log
// package. Records render as "<message>: <chain>" with the causes separated
// by ": ". It implements both tiers, ownership costs it nothing.
type GlobalLogger struct{}

var _ Logger = GlobalLogger{}
var _ OwnedLogger = GlobalLogger{}

func (GlobalLogger) LogError(message string, err error) {
	log.Errorf("%s: %s", message, errors.JoinChain(err, ": "))
}

func (GlobalLogger) LogWarning(message string, err error) {
	log.Warnf("%s: %s", message, errors.JoinChain(err, ": "))
}

func (GlobalLogger) LogInfo(message string, err error) {
	log.Infof("%s: %s", message, errors.JoinChain(err, ": "))
}

func (GlobalLogger) LogDebug(message string, err error) {
	log.Debugf("%s: %s", message, errors.JoinChain(err, ": "))
}

func (GlobalLogger) LogTrace(message string, err error) {
	log.Tracef("%s: %s", message, errors.JoinChain(err, ": "))
}

func (g GlobalLogger) LogErrorOwned(message string, err error) { g.LogError(message, err) }

func (g GlobalLogger) LogWarningOwned(message string, err error) { g.LogWarning(message, err) }

func (g GlobalLogger) LogInfoOwned(message string, err error) { g.LogInfo(message, err) }

func (g GlobalLogger) LogDebugOwned(message string, err error) { g.LogDebug(message, err) }

func (g GlobalLogger) LogTraceOwned(message string, err error) { g.LogTrace(message, err) }
