package handler

import (
	"github.com/philipp01105/jsconsole/core"
)

// Handler defines the interface for entry handlers.
//
// Handle is called synchronously and the entry is returned to the pool as
// soon as it returns; handlers that keep entries must Clone them.
type Handler interface {
	// Handle processes an entry
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// Clearer is implemented by handlers that can clear what they have
// displayed or buffered, backing console.clear.
type Clearer interface {
	Clear()
}
