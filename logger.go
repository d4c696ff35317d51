package batchdl

import (
	"fmt"
	"strings"

	log "unknwon.dev/clog/v2"
)

// Logger is the diagnostic log of the package. Status lines meant for the
// user go through Console instead.
type Logger interface {
	Trace(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NewLogger creates a Logger tagging every message with prefix. skip is the
// call depth used for the caller info of Error.
//
//	log := NewLogger("Run", 2)
func NewLogger(prefix string, skip int) Logger {
	return &logPrefix{
		prefix: strings.ToUpper(prefix),
		skip:   skip,
	}
}

type logPrefix struct {
	prefix string
	skip   int
}

func (l *logPrefix) format(format string) string {
	if l.prefix == "" {
		return format
	}
	return fmt.Sprintf("[%s] %s", l.prefix, format)
}

func (l *logPrefix) Trace(format string, v ...interface{}) {
	log.Trace(l.format(format), v...)
}

func (l *logPrefix) Info(format string, v ...interface{}) {
	log.Info(l.format(format), v...)
}

func (l *logPrefix) Warn(format string, v ...interface{}) {
	log.Warn(l.format(format), v...)
}

func (l *logPrefix) Error(format string, v ...interface{}) {
	log.ErrorDepth(l.skip, l.format(format), v...)
}

// restyLogger routes resty's own messages into a Logger.
type restyLogger struct {
	log Logger
}

func (r restyLogger) Errorf(format string, v ...interface{}) {
	r.log.Error(strings.TrimSuffix(format, "\n"), v...)
}

func (r restyLogger) Warnf(format string, v ...interface{}) {
	r.log.Warn(strings.TrimSuffix(format, "\n"), v...)
}

func (r restyLogger) Debugf(format string, v ...interface{}) {
	r.log.Trace(strings.TrimSuffix(format, "\n"), v...)
}
