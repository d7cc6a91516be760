package logging

// TB is the subset of testing.TB the test logger needs. Declared locally
// so this package does not import the testing package.
type TB interface {
	Logf(format string, args ...interface{})
}

// testLogger routes log output into a test's log buffer so it shows up
// with -v and on failure.
type testLogger struct {
	tb TB
}

// ForTesting returns a Logger that writes through tb.Logf.
func ForTesting(tb TB) Logger {
	return &testLogger{tb: tb}
}

func (l *testLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.emit("DEBUG", msg, keysAndValues)
}

func (l *testLogger) Info(msg string, keysAndValues ...interface{}) {
	l.emit("INFO", msg, keysAndValues)
}

func (l *testLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.emit("WARN", msg, keysAndValues)
}

func (l *testLogger) Error(msg string, keysAndValues ...interface{}) {
	l.emit("ERROR", msg, keysAndValues)
}

func (l *testLogger) emit(level, msg string, kv []interface{}) {
	if len(kv) == 0 {
		l.tb.Logf("%s: %s", level, msg)
		return
	}
	l.tb.Logf("%s: %s %v", level, msg, kv)
}
