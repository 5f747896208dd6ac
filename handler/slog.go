package handler

import (
	"context"
	"log/slog"

	"github.com/philipp01105/jsconsole/core"
)

// SlogHandler forwards entries to a slog.Handler, so console output can join
// an application's existing log/slog pipeline.
type SlogHandler struct {
	handler slog.Handler
}

// NewSlogHandler creates a handler writing to h
func NewSlogHandler(h slog.Handler) *SlogHandler {
	return &SlogHandler{handler: h}
}

// Handle converts the entry to a slog.Record
func (s *SlogHandler) Handle(entry *core.Entry) error {
	ctx := context.Background()
	level := severityToSlog(entry.Severity())
	if !s.handler.Enabled(ctx, level) {
		return nil
	}

	record := slog.NewRecord(entry.Time, level, entry.Message, 0)
	record.AddAttrs(slog.String("console", entry.Level.String()))
	if len(entry.Args) > 1 {
		record.AddAttrs(slog.Any("args", cloneStrings(entry.Args)))
	}
	if entry.Stack != nil {
		record.AddAttrs(slog.Any("stack", cloneStrings(entry.Stack)))
	}
	for _, f := range entry.Fields {
		record.AddAttrs(fieldToSlog(f))
	}
	return s.handler.Handle(ctx, record)
}

// Close is a no-op; slog handlers have no lifecycle
func (s *SlogHandler) Close() error {
	return nil
}

// severityToSlog converts a core.Severity to a slog.Level.
func severityToSlog(sev core.Severity) slog.Level {
	switch sev {
	case core.DebugSeverity:
		return slog.LevelDebug
	case core.WarnSeverity:
		return slog.LevelWarn
	case core.ErrorSeverity:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// fieldToSlog converts a core.Field to a slog.Attr.
func fieldToSlog(f core.Field) slog.Attr {
	switch f.Type {
	case core.FieldString:
		return slog.String(f.Key, f.Str)
	case core.FieldInt:
		return slog.Int64(f.Key, f.Int64)
	case core.FieldBool:
		return slog.Bool(f.Key, f.Int64 == 1)
	default:
		return slog.Any(f.Key, f.Any)
	}
}
