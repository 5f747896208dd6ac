// Package core defines the types shared by the console, its clients and the
// output handlers.
//
// Level tags a message with the console method that produced it (log, warn,
// count, ...). Severity is the coarser DEBUG/INFO/WARN/ERROR scale derived
// from it, used for filtering and by logging backends.
//
// Value is the console's view of a script value. Converting a value to a
// string may run user code, so ToString returns an error that every caller
// threads back to the script. Primitive is a ready-made Value for hosts that
// have no value representation of their own.
//
// CounterStore holds the per-console count map behind console.count and
// console.countReset. BuildTrace turns a host's frame names into the Trace
// record printed by console.trace.
//
// Entry objects are pooled via sync.Pool. Printers get an Entry with
// GetEntry and return it with PutEntry once the handler has consumed it;
// handlers that keep entries must Clone them.
package core
