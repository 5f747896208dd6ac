package formatter

import (
	"bytes"
	"io"
	"sync"

	"github.com/philipp01105/jsconsole/core"
)

// Formatter defines the interface for entry formatters
type Formatter interface {
	// Format formats an entry into bytes
	Format(entry *core.Entry) ([]byte, error)
}

// WriterFormatter is an optional interface that formatters can implement
// to write directly to a writer without intermediate byte slice allocation.
type WriterFormatter interface {
	// FormatTo formats an entry and writes it directly to the writer
	FormatTo(entry *core.Entry, w io.Writer) error
}

// Config holds common formatter configuration
type Config struct {
	// TimestampFormat specifies the time format (empty for the formatter default)
	TimestampFormat string
	// DisableTimestamp omits the timestamp entirely
	DisableTimestamp bool
	// Color renders level tags with terminal colors (text only)
	Color bool
}

// maxPooledBuffer caps the capacity of buffers returned to the pool
const maxPooledBuffer = 64 << 10

var buffers = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 256))
	},
}

// encodeFunc appends one rendered entry to buf
type encodeFunc func(entry *core.Entry, buf *bytes.Buffer)

func withBuffer(use func(buf *bytes.Buffer)) {
	buf := buffers.Get().(*bytes.Buffer)
	buf.Reset()
	use(buf)
	if buf.Cap() <= maxPooledBuffer {
		buffers.Put(buf)
	}
}

// render encodes entry into a slice owned by the caller
func render(entry *core.Entry, encode encodeFunc) []byte {
	var out []byte
	withBuffer(func(buf *bytes.Buffer) {
		encode(entry, buf)
		out = bytes.Clone(buf.Bytes())
	})
	return out
}

// renderTo encodes entry and writes it to w in a single Write call
func renderTo(entry *core.Entry, w io.Writer, encode encodeFunc) error {
	var err error
	withBuffer(func(buf *bytes.Buffer) {
		encode(entry, buf)
		_, err = w.Write(buf.Bytes())
	})
	return err
}
