package errors

import (
	stderr "errors"
	"strings"
)

var New = stderr.New
var Is = stderr.Is
var As = stderr.As
var Join = stderr.Join
var Unwrap = stderr.Unwrap

// WalkChain visits err and then every cause below it, following Unwrap from
// the outermost error toward the root. handle is called once per error and
// may stop the walk early by returning false. A nil err is an empty chain,
// handle is never called for it.
func WalkChain(err error, handle func(err error) bool) {
	for err != nil {
		if !handle(err) {
			return
		}
		err = Unwrap(err)
	}
}

// JoinChain renders the messages of err and all of its causes in a single
// string, outermost first, separated by sep. The separator appears only
// between messages: an error without a cause renders as its bare message and
// a nil err renders as the empty string.
func JoinChain(err error, sep string) string {
	if err == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(err.Error())
	for err = Unwrap(err); err != nil; err = Unwrap(err) {
		sb.WriteString(sep)
		sb.WriteString(err.Error())
	}
	return sb.String()
}
