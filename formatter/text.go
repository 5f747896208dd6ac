package formatter

import (
	"bytes"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/philipp01105/jsconsole/core"
)

// TextFormatter renders entries the way a terminal console shows them:
//
//	2026-01-15T12:00:00Z [log] hello world session=42
//	2026-01-15T12:00:00Z [trace] label
//	    at inner
//	    at outer
type TextFormatter struct {
	Config
	tags [core.AssertLevel + 1]string
}

var severityColors = map[core.Severity]lipgloss.Color{
	core.DebugSeverity: lipgloss.Color("244"),
	core.InfoSeverity:  lipgloss.Color("39"),
	core.WarnSeverity:  lipgloss.Color("214"),
	core.ErrorSeverity: lipgloss.Color("196"),
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	f := &TextFormatter{Config: cfg}
	// pre-render level tags so the hot path is a single WriteString
	for l := core.DebugLevel; l <= core.AssertLevel; l++ {
		tag := "[" + l.String() + "]"
		if cfg.Color {
			tag = lipgloss.NewStyle().
				Bold(l.Severity() >= core.WarnSeverity).
				Foreground(severityColors[l.Severity()]).
				Render(tag)
		}
		f.tags[l] = tag
	}
	return f
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *core.Entry) ([]byte, error) {
	return render(entry, f.formatToBuffer), nil
}

// FormatTo formats an entry and writes it directly to the writer
func (f *TextFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	return renderTo(entry, w, f.formatToBuffer)
}

func (f *TextFormatter) formatToBuffer(entry *core.Entry, buf *bytes.Buffer) {
	if !f.DisableTimestamp {
		buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
		buf.WriteByte(' ')
	}

	if entry.Level >= 0 && int(entry.Level) < len(f.tags) {
		buf.WriteString(f.tags[entry.Level])
	} else {
		buf.WriteString("[unknown]")
	}

	if entry.Message != "" {
		buf.WriteByte(' ')
		buf.WriteString(entry.Message)
	}

	for _, field := range entry.Fields {
		buf.WriteByte(' ')
		buf.WriteString(field.Key)
		buf.WriteByte('=')
		buf.WriteString(field.StringValue())
	}

	buf.WriteByte('\n')

	for _, fn := range entry.Stack {
		buf.WriteString("    at ")
		buf.WriteString(fn)
		buf.WriteByte('\n')
	}
}
