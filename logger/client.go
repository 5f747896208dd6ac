package logger

import (
	"io"
	"strings"

	"github.com/philipp01105/jsconsole/core"
	"github.com/philipp01105/jsconsole/handler"
)

// Printer is the terminal step of the console pipeline: it renders leveled,
// already formatted data.
type Printer interface {
	// Print renders args at level
	Print(level core.Level, args []core.Value) error
	// PrintTrace renders a console.trace record
	PrintTrace(trace core.Trace) error
}

// Clearer is implemented by printers that can clear their output
type Clearer interface {
	Clear()
}

// Client implements the console client operations on top of a Printer and a
// Formatter. It is immutable after Build and may be shared by consoles.
type Client struct {
	printer   Printer
	formatter Formatter
}

// Builder provides a fluent API for building Client instances
type Builder struct {
	printer     Printer
	handler     handler.Handler
	formatter   Formatter
	minSeverity core.Severity
	fields      []core.Field
	clock       core.Clock
}

// NewBuilder creates a new client builder
func NewBuilder() *Builder {
	return &Builder{
		formatter:   PassthroughFormatter{},
		minSeverity: core.DebugSeverity,
		clock:       core.SystemClock{},
	}
}

// WithPrinter sets a custom printer. It takes precedence over WithHandler.
func (b *Builder) WithPrinter(p Printer) *Builder {
	b.printer = p
	return b
}

// WithHandler prints through a HandlerPrinter writing to h
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithFormatter sets the formatter applied to format strings
func (b *Builder) WithFormatter(f Formatter) *Builder {
	b.formatter = f
	return b
}

// WithMinSeverity drops messages below sev
func (b *Builder) WithMinSeverity(sev core.Severity) *Builder {
	b.minSeverity = sev
	return b
}

// WithFields adds fields to every printed entry
func (b *Builder) WithFields(fields ...core.Field) *Builder {
	b.fields = append(b.fields, fields...)
	return b
}

// WithClock sets the clock used to timestamp entries
func (b *Builder) WithClock(c core.Clock) *Builder {
	b.clock = c
	return b
}

// WithCoarseClock timestamps entries with the cached coarse clock
func (b *Builder) WithCoarseClock(enabled bool) *Builder {
	if enabled {
		b.clock = core.NewCoarseClock()
	} else {
		b.clock = core.SystemClock{}
	}
	return b
}

// Build creates the Client instance
func (b *Builder) Build() *Client {
	p := b.printer
	if p == nil {
		p = NewHandlerPrinter(PrinterConfig{
			Handler:     b.handler,
			MinSeverity: b.minSeverity,
			Fields:      b.fields,
			Clock:       b.clock,
		})
	}
	f := b.formatter
	if f == nil {
		f = PassthroughFormatter{}
	}
	return &Client{printer: p, formatter: f}
}

// Logger decides whether args need formatting before they are printed.
// A single argument is printed as is; otherwise the first argument is
// stringified and, when it contains a '%', the whole list goes through the
// formatter first. Conversion failures abort and are returned unchanged.
func (c *Client) Logger(level core.Level, args []core.Value) error {
	if len(args) == 0 {
		return nil
	}

	first := args[0]
	if len(args) == 1 {
		return c.printer.Print(level, args[:1])
	}

	s, err := first.ToString()
	if err != nil {
		return err
	}
	if !strings.Contains(s, "%") {
		return c.printer.Print(level, args)
	}

	formatted, err := c.formatter.Format(args)
	if err != nil {
		return err
	}
	return c.printer.Print(level, formatted)
}

// Formatter applies the client's formatter to args
func (c *Client) Formatter(args []core.Value) ([]core.Value, error) {
	return c.formatter.Format(args)
}

// Printer prints args at level without format detection
func (c *Client) Printer(level core.Level, args []core.Value) error {
	return c.printer.Print(level, args)
}

// PrintTrace prints a trace record
func (c *Client) PrintTrace(trace core.Trace) error {
	return c.printer.PrintTrace(trace)
}

// Clear clears the printer's output when it supports clearing
func (c *Client) Clear() {
	if cl, ok := c.printer.(Clearer); ok {
		cl.Clear()
	}
}

// Close closes the printer when it holds resources
func (c *Client) Close() error {
	if cl, ok := c.printer.(io.Closer); ok {
		return cl.Close()
	}
	return nil
}
