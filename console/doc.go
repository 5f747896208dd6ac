// Package console implements the Console API a script engine exposes to
// scripts: debug, error, info, log, warn, trace, clear, count, countReset
// and assert.
//
// A Console belongs to one realm. It owns that realm's count map and holds
// an optional Client, the host-supplied sink every method emits through.
// With no client attached the emitting methods succeed silently, while
// count, countReset and assert still do their bookkeeping.
//
// Arguments arrive as core.Values. Converting a value to a string may run
// script code and fail; such failures abort the method and are returned to
// the caller, who rethrows them into the script.
//
//	c := console.New(stack)
//	c.SetClient(logger.NewBuilder().WithHandler(h).Build())
//	_ = c.Count()                 // "default: 1"
//	_ = c.Assert(core.Bool(false), core.String("oops"))
//	                              // "Assertion failed: oops"
package console
