package middleware

import (
	"sync"
)

type entry struct {
	level   string
	message string
	args    []any
}

type recordLogger struct {
	mu      sync.Mutex
	entries []entry
}

func (l *recordLogger) record(level, message string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry{level: level, message: message, args: args})
}

func (l *recordLogger) Infow(message string, args ...any)  { l.record("info", message, args...) }
func (l *recordLogger) Warnw(message string, args ...any)  { l.record("warn", message, args...) }
func (l *recordLogger) Errorw(message string, args ...any) { l.record("error", message, args...) }

func (l *recordLogger) levels() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	levels := make([]string, 0, len(l.entries))
	for _, e := range l.entries {
		levels = append(levels, e.level)
	}
	return levels
}

// value returns the value logged under key by the last entry.
func (l *recordLogger) value(key string) any {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.entries) == 0 {
		return nil
	}
	args := l.entries[len(l.entries)-1].args
	for i := 0; i+1 < len(args); i += 2 {
		if args[i] == key {
			return args[i+1]
		}
	}
	return nil
}
