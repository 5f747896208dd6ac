package logger

import (
	"github.com/philipp01105/jsconsole/core"
)

// Severity Re-export type and constants for convenience
type Severity = core.Severity

const (
	DebugSeverity = core.DebugSeverity
	InfoSeverity  = core.InfoSeverity
	WarnSeverity  = core.WarnSeverity
	ErrorSeverity = core.ErrorSeverity
)

// ParseSeverity converts a string to a Severity
func ParseSeverity(s string) Severity {
	return core.ParseSeverity(s)
}
