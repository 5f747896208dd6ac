package core

import "strings"

// Level is the console method a message was emitted through. It selects how
// a client renders the message and carries no other meaning.
type Level int8

const (
	// DebugLevel is console.debug
	DebugLevel Level = iota
	// ErrorLevel is console.error
	ErrorLevel
	// InfoLevel is console.info
	InfoLevel
	// LogLevel is console.log
	LogLevel
	// WarnLevel is console.warn
	WarnLevel
	// TraceLevel is console.trace
	TraceLevel
	// CountLevel is console.count
	CountLevel
	// CountResetLevel is console.countReset
	CountResetLevel
	// AssertLevel is console.assert
	AssertLevel
)

var levelNames = [...]string{
	DebugLevel:      "debug",
	ErrorLevel:      "error",
	InfoLevel:       "info",
	LogLevel:        "log",
	WarnLevel:       "warn",
	TraceLevel:      "trace",
	CountLevel:      "count",
	CountResetLevel: "countReset",
	AssertLevel:     "assert",
}

// String returns the console method name of the level
func (l Level) String() string {
	if l >= 0 && int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// Severity maps the level onto the severity scale used for filtering and
// by logging backends.
func (l Level) Severity() Severity {
	switch l {
	case DebugLevel:
		return DebugSeverity
	case WarnLevel:
		return WarnSeverity
	case ErrorLevel, AssertLevel:
		return ErrorSeverity
	default:
		return InfoSeverity
	}
}

// Severity represents how important a printed message is
type Severity int8

const (
	// DebugSeverity for detailed debugging output
	DebugSeverity Severity = iota
	// InfoSeverity for regular output (default)
	InfoSeverity
	// WarnSeverity for warnings
	WarnSeverity
	// ErrorSeverity for errors and failed assertions
	ErrorSeverity
)

// String returns the string representation of the severity
func (s Severity) String() string {
	switch s {
	case DebugSeverity:
		return "DEBUG"
	case InfoSeverity:
		return "INFO"
	case WarnSeverity:
		return "WARN"
	case ErrorSeverity:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseSeverity converts a string to a Severity. Unknown input yields
// InfoSeverity.
func ParseSeverity(s string) Severity {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return DebugSeverity
	case "INFO":
		return InfoSeverity
	case "WARN", "WARNING":
		return WarnSeverity
	case "ERROR":
		return ErrorSeverity
	default:
		return InfoSeverity
	}
}
