package console

import "github.com/philipp01105/jsconsole/core"

// Client is the sink a Console emits through. The host owns it; a Console
// only keeps a reference, and several consoles may share one client.
//
// logger.Client is the stock implementation.
type Client interface {
	// Logger runs the Logger algorithm: decide whether args need the
	// Formatter, then Printer.
	Logger(level core.Level, args []core.Value) error
	// Formatter expands format directives in args
	Formatter(args []core.Value) ([]core.Value, error)
	// Printer renders already formatted args
	Printer(level core.Level, args []core.Value) error
	// PrintTrace renders a trace record at TraceLevel
	PrintTrace(trace core.Trace) error
	// Clear clears the displayed or buffered output
	Clear()
}
