// Package formatter defines how printed console entries are serialized into
// bytes.
//
// It exposes two interfaces: Formatter, which returns a []byte, and
// WriterFormatter, which writes directly to an io.Writer. Handlers check for
// WriterFormatter at construction time and prefer it when available.
//
// TextFormatter produces the familiar terminal layout: a timestamp, the
// console method as a bracketed tag ("[warn]", "[countReset]"), the message,
// key=value fields and, for console.trace, one "    at <function>" line per
// frame. Tags are pre-rendered at construction, optionally colored by
// severity with lipgloss.
//
// JSONFormatter writes one object per line with the level, the derived
// severity, the message, the individual stringified arguments and the trace
// stack. Both use a pooled bytes.Buffer; buffers larger than 64 KiB are not
// returned to the pool.
package formatter
