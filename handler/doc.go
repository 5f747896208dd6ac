// Package handler provides the Handler interface and its built-in
// implementations for dispatching printed console entries to outputs.
//
// Console operations are synchronous, so every handler processes an entry
// before Handle returns. Handlers may be shared by several consoles and
// guard their own state.
//
// Built-in handlers:
//
//   - WriterHandler formats entries to any io.Writer (default: stdout) and
//     can clear an ANSI terminal on console.clear.
//   - MemoryHandler retains entries in a bounded buffer for later display.
//   - MultiHandler fans out a single entry to multiple child handlers and
//     combines their errors with multierr.
//   - ZapHandler and SlogHandler forward entries to zap and log/slog,
//     mapping the entry severity onto the backend's levels.
//
// Handlers that can clear their output implement Clearer. WriterHandler
// tracks processed, failed and clear counts via Stats.
package handler
