package object_test

import (
	"context"
	"strings"
	"sync"
)

type logEntry struct {
	level string
	msg   string
	kv    []interface{}
}

// recordingLogger collects messages to check them in tests.
type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *recordingLogger) log(level, msg string, kv []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, logEntry{level: level, msg: msg, kv: kv})
}

func (l *recordingLogger) Debug(_ context.Context, msg string, keysAndValues ...interface{}) {
	l.log("debug", msg, keysAndValues)
}

func (l *recordingLogger) Info(_ context.Context, msg string, keysAndValues ...interface{}) {
	l.log("info", msg, keysAndValues)
}

func (l *recordingLogger) Important(_ context.Context, msg string, keysAndValues ...interface{}) {
	l.log("important", msg, keysAndValues)
}

func (l *recordingLogger) Warn(_ context.Context, msg string, keysAndValues ...interface{}) {
	l.log("warn", msg, keysAndValues)
}

func (l *recordingLogger) Error(_ context.Context, msg string, keysAndValues ...interface{}) {
	l.log("error", msg, keysAndValues)
}

// find returns first entry with message containing substr.
func (l *recordingLogger) find(substr string) (logEntry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, e := range l.entries {
		if strings.Contains(e.msg, substr) {
			return e, true
		}
	}

	return logEntry{}, false
}

func (l *recordingLogger) count(level string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := 0

	for _, e := range l.entries {
		if e.level == level {
			n++
		}
	}

	return n
}
