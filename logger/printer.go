package logger

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/philipp01105/jsconsole/core"
	"github.com/philipp01105/jsconsole/handler"
)

// PrinterConfig holds configuration for HandlerPrinter
type PrinterConfig struct {
	// Handler receives printed entries; a nil handler discards everything
	Handler handler.Handler
	// MinSeverity drops entries below it (default: DebugSeverity)
	MinSeverity core.Severity
	// Fields are attached to every entry
	Fields []core.Field
	// Clock timestamps entries (default: SystemClock)
	Clock core.Clock
}

// HandlerPrinter stringifies printed values into a pooled core.Entry and
// hands it to a handler.
type HandlerPrinter struct {
	h           handler.Handler
	minSeverity core.Severity
	fields      []core.Field
	clock       core.Clock
}

// NewHandlerPrinter creates a printer from cfg
func NewHandlerPrinter(cfg PrinterConfig) *HandlerPrinter {
	if cfg.Clock == nil {
		cfg.Clock = core.SystemClock{}
	}
	return &HandlerPrinter{
		h:           cfg.Handler,
		minSeverity: cfg.MinSeverity,
		fields:      cfg.Fields,
		clock:       cfg.Clock,
	}
}

func (p *HandlerPrinter) enabled(level core.Level) bool {
	return p.h != nil && level.Severity() >= p.minSeverity
}

// Print stringifies args and dispatches them as one entry. A conversion
// failure is returned unchanged and nothing is printed.
func (p *HandlerPrinter) Print(level core.Level, args []core.Value) error {
	if !p.enabled(level) {
		return nil
	}

	strs, err := core.ToStrings(args)
	if err != nil {
		return err
	}

	entry := core.GetEntry()
	entry.Time = p.clock.Now()
	entry.Level = level
	entry.Message = strings.Join(strs, " ")
	entry.Args = append(entry.Args, strs...)
	return p.dispatch(entry)
}

// PrintTrace dispatches a trace entry whose message is the trace label
func (p *HandlerPrinter) PrintTrace(trace core.Trace) error {
	if !p.enabled(core.TraceLevel) {
		return nil
	}

	entry := core.GetEntry()
	entry.Time = p.clock.Now()
	entry.Level = core.TraceLevel
	if trace.HasLabel {
		entry.Message = trace.Label
		entry.Args = append(entry.Args, trace.Label)
	}
	entry.Stack = trace.Stack
	if entry.Stack == nil {
		entry.Stack = []string{}
	}
	return p.dispatch(entry)
}

func (p *HandlerPrinter) dispatch(entry *core.Entry) error {
	if len(p.fields) > 0 {
		entry.Fields = append(entry.Fields, p.fields...)
	}
	level := entry.Level
	err := p.h.Handle(entry)
	core.PutEntry(entry)
	if err != nil {
		return errors.Wrapf(err, "console.%s", level)
	}
	return nil
}

// Clear clears the handler when it supports clearing
func (p *HandlerPrinter) Clear() {
	if c, ok := p.h.(handler.Clearer); ok {
		c.Clear()
	}
}

// Close closes the handler
func (p *HandlerPrinter) Close() error {
	if p.h == nil {
		return nil
	}
	return p.h.Close()
}
