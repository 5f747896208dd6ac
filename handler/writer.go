package handler

import (
	"io"
	"os"
	"sync"

	"github.com/philipp01105/jsconsole/core"
	"github.com/philipp01105/jsconsole/formatter"
)

// ClearSequence erases the scrollback and the visible screen of an ANSI
// terminal and homes the cursor.
const ClearSequence = "\033[3J\033[H\033[2J"

// WriterConfig holds configuration for the writer handler
type WriterConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// ClearScreen makes Clear write ClearSequence to the writer
	ClearScreen bool
}

// WriterHandler formats entries and writes them to an io.Writer. Writes are
// serialized so one handler can be shared by several consoles.
type WriterHandler struct {
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	clearScreen     bool
	stats           *Stats
	mu              sync.Mutex
	closed          bool
}

// NewWriterHandler creates a new writer handler
func NewWriterHandler(cfg WriterConfig) *WriterHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}

	h := &WriterHandler{
		writer:      cfg.Writer,
		formatter:   cfg.Formatter,
		clearScreen: cfg.ClearScreen,
		stats:       NewStats(),
	}
	// Cache WriterFormatter for the direct write path
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)
	return h
}

// Handle formats and writes an entry
func (h *WriterHandler) Handle(entry *core.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrClosed
	}

	var err error
	if h.writerFormatter != nil {
		err = h.writerFormatter.FormatTo(entry, h.writer)
	} else {
		var data []byte
		data, err = h.formatter.Format(entry)
		if err == nil {
			_, err = h.writer.Write(data)
		}
	}

	if err != nil {
		h.stats.IncrementFailed()
		return err
	}
	h.stats.IncrementProcessed(entry.Severity())
	return nil
}

// Clear writes the terminal clear sequence when enabled
func (h *WriterHandler) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.stats.IncrementCleared()
	if !h.clearScreen || h.closed {
		return
	}
	if _, err := io.WriteString(h.writer, ClearSequence); err != nil {
		h.stats.IncrementFailed()
	}
}

// Stats returns a snapshot of the current statistics
func (h *WriterHandler) Stats() Snapshot {
	return h.stats.GetSnapshot()
}

// Close stops the handler; files are synced but never closed, the owner of
// the writer closes it.
func (h *WriterHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true
	if f, ok := h.writer.(*os.File); ok && f != os.Stdout && f != os.Stderr {
		return f.Sync()
	}
	return nil
}
