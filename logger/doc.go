// Package logger implements the console client: the Logger algorithm that
// every emitting console method funnels through, the pluggable Formatter and
// the Printer that renders the result.
//
// Logger(level, args) follows the Console Standard: an empty list prints
// nothing, a single argument is printed directly, and otherwise the first
// argument is stringified to decide whether the list must pass through the
// Formatter before the Printer. Stringification may fail, and the failure is
// returned to the console unchanged.
//
// A Client is immutable after construction and may be shared by several
// consoles. Build one with the Builder:
//
//	client := logger.NewBuilder().
//	    WithHandler(handler.NewWriterHandler(handler.WriterConfig{})).
//	    WithMinSeverity(logger.InfoSeverity).
//	    WithFields(logger.String("session", id)).
//	    Build()
//
// Without WithPrinter the client prints through a HandlerPrinter, which
// stringifies the values into a pooled core.Entry and hands it to a
// handler.Handler. The default Formatter is PassthroughFormatter; format
// directives are printed literally.
package logger
