package handler

import (
	"go.uber.org/multierr"

	"github.com/philipp01105/jsconsole/core"
)

// MultiHandler sends entries to multiple handlers
type MultiHandler struct {
	handlers []Handler
}

// NewMultiHandler creates a new multi-handler
func NewMultiHandler(handlers ...Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

// Handle sends the entry to every handler. All handlers run even when one
// fails; the failures are combined.
func (h *MultiHandler) Handle(entry *core.Entry) error {
	var err error
	for _, handler := range h.handlers {
		err = multierr.Append(err, handler.Handle(entry))
	}
	return err
}

// Clear clears every handler that supports it
func (h *MultiHandler) Clear() {
	for _, handler := range h.handlers {
		if c, ok := handler.(Clearer); ok {
			c.Clear()
		}
	}
}

// Close closes all handlers
func (h *MultiHandler) Close() error {
	var err error
	for _, handler := range h.handlers {
		err = multierr.Append(err, handler.Close())
	}
	return err
}
