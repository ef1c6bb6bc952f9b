package bootstrap

import "testing"

// countingLogger tallies calls per level.
type countingLogger struct {
	counts map[string]int
}

func (l *countingLogger) Print(string)   { l.counts["print"]++ }
func (l *countingLogger) Trace(string)   { l.counts["trace"]++ }
func (l *countingLogger) Debug(string)   { l.counts["debug"]++ }
func (l *countingLogger) Info(string)    { l.counts["info"]++ }
func (l *countingLogger) Warning(string) { l.counts["warning"]++ }
func (l *countingLogger) Error(string)   { l.counts["error"]++ }
func (l *countingLogger) Fatal(string)   { l.counts["fatal"]++ }

// TestLeveledLoggerFilters checks messages below the level are dropped.
func TestLeveledLoggerFilters(t *testing.T) {
	next := &countingLogger{counts: map[string]int{}}
	log := newLeveledLogger(next, "warning")

	log.Trace("t")
	log.Debug("d")
	log.Info("i")
	log.Warning("w")
	log.Error("e")

	if next.counts["trace"]+next.counts["debug"]+next.counts["info"] != 0 {
		t.Fatalf("low levels passed through: %v", next.counts)
	}
	if next.counts["warning"] != 1 || next.counts["error"] != 1 {
		t.Fatalf("counts = %v", next.counts)
	}
}

// TestLeveledLoggerUnknownLevel checks the info fallback.
func TestLeveledLoggerUnknownLevel(t *testing.T) {
	next := &countingLogger{counts: map[string]int{}}
	log := newLeveledLogger(next, "chatty")

	log.Debug("d")
	log.Info("i")
	if next.counts["debug"] != 0 || next.counts["info"] != 1 {
		t.Fatalf("counts = %v", next.counts)
	}
}
