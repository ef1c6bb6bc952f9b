package bootstrap

import (
	"github.com/wailsapp/wails/v2/pkg/logger"
)

// leveledLogger drops messages below level before handing them to next.
type leveledLogger struct {
	next  logger.Logger
	level logger.LogLevel
}

// newLeveledLogger parses level names such as "debug" or "warning";
// unknown names fall back to info.
func newLeveledLogger(next logger.Logger, level string) *leveledLogger {
	parsed, err := logger.StringToLogLevel(level)
	if err != nil {
		parsed = logger.INFO
	}
	return &leveledLogger{next: next, level: parsed}
}

func (l *leveledLogger) Print(message string) { l.next.Print(message) }

func (l *leveledLogger) Trace(message string) {
	if l.level <= logger.TRACE {
		l.next.Trace(message)
	}
}

func (l *leveledLogger) Debug(message string) {
	if l.level <= logger.DEBUG {
		l.next.Debug(message)
	}
}

func (l *leveledLogger) Info(message string) {
	if l.level <= logger.INFO {
		l.next.Info(message)
	}
}

func (l *leveledLogger) Warning(message string) {
	if l.level <= logger.WARNING {
		l.next.Warning(message)
	}
}

func (l *leveledLogger) Error(message string) { l.next.Error(message) }

func (l *leveledLogger) Fatal(message string) { l.next.Fatal(message) }
