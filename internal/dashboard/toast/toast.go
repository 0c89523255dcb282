// Package toast surfaces operation outcomes to the user. Every failed call
// collapses to a single transient message; nothing is fatal.
package toast

import "go.uber.org/zap"

type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Logger writes notifications through the shared zap logger, the terminal
// client's stand-in for a toast popup.
type Logger struct {
	log *zap.SugaredLogger
}

func NewLogger(log *zap.SugaredLogger) *Logger {
	return &Logger{log: log}
}

func (l *Logger) Success(msg string) {
	l.log.Infof("%s", msg)
}

func (l *Logger) Error(msg string) {
	l.log.Errorf("%s", msg)
}
