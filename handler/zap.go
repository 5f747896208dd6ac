package handler

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/jsconsole/core"
)

// ZapHandler forwards entries to a zap.Logger. The console level, the
// stringified arguments, the trace stack and client fields become zap
// fields; the severity selects the zap level.
type ZapHandler struct {
	logger *zap.Logger
}

// NewZapHandler creates a handler writing to logger
func NewZapHandler(logger *zap.Logger) *ZapHandler {
	return &ZapHandler{logger: logger}
}

// Handle writes the entry through zap
func (h *ZapHandler) Handle(entry *core.Entry) error {
	ce := h.logger.Check(severityToZap(entry.Severity()), entry.Message)
	if ce == nil {
		return nil
	}

	fields := make([]zap.Field, 0, 3+len(entry.Fields))
	fields = append(fields, zap.String("console", entry.Level.String()))
	if len(entry.Args) > 1 {
		fields = append(fields, zap.Strings("args", cloneStrings(entry.Args)))
	}
	if entry.Stack != nil {
		fields = append(fields, zap.Strings("stack", cloneStrings(entry.Stack)))
	}
	for _, f := range entry.Fields {
		fields = append(fields, fieldToZap(f))
	}

	if !entry.Time.IsZero() {
		ce.Time = entry.Time
	}
	ce.Write(fields...)
	return nil
}

// cloneStrings copies s so a backend retaining fields does not alias the
// pooled entry.
func cloneStrings(s []string) []string {
	return append(make([]string, 0, len(s)), s...)
}

// Close flushes buffered zap output
func (h *ZapHandler) Close() error {
	return h.logger.Sync()
}

func severityToZap(sev core.Severity) zapcore.Level {
	switch sev {
	case core.DebugSeverity:
		return zapcore.DebugLevel
	case core.WarnSeverity:
		return zapcore.WarnLevel
	case core.ErrorSeverity:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func fieldToZap(f core.Field) zap.Field {
	switch f.Type {
	case core.FieldString:
		return zap.String(f.Key, f.Str)
	case core.FieldInt:
		return zap.Int64(f.Key, f.Int64)
	case core.FieldBool:
		return zap.Bool(f.Key, f.Int64 == 1)
	default:
		return zap.Any(f.Key, f.Any)
	}
}
