package ports

import (
	"fmt"
	"strings"
)

// LogLevel orders log messages by severity. A logger drops messages below
// its own level.
type LogLevel int

const (
	// LevelDebug is for per-stage details (sizes, offsets, kernel choices).
	LevelDebug LogLevel = iota
	// LevelInfo is for build progress reported by the orchestrator.
	LevelInfo
	// LevelWarn is for recoverable problems such as a skipped backup copy.
	LevelWarn
	// LevelError is for failures that abort the build.
	LevelError
	// LevelQuiet suppresses all log output.
	LevelQuiet
)

var levelNames = [...]string{
	LevelDebug: "debug",
	LevelInfo:  "info",
	LevelWarn:  "warn",
	LevelError: "error",
	LevelQuiet: "quiet",
}

func (l LogLevel) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return "unknown"
	}
	return levelNames[l]
}

// ParseLogLevel maps a level name to a LogLevel. Matching ignores case and
// accepts "warning" for LevelWarn. Unknown names yield LevelInfo and an error.
func ParseLogLevel(s string) (LogLevel, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "warning" {
		return LevelWarn, nil
	}
	for l, n := range levelNames {
		if n == name {
			return LogLevel(l), nil
		}
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Logger is the logging port shared by stages and the orchestrator. Messages
// are translation keys formatted with args.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})

	// WithComponent returns a Logger that prefixes messages with a stage name.
	// Nested calls join names with "/".
	WithComponent(component string) Logger
}
