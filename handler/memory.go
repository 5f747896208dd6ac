package handler

import (
	"strings"
	"sync"

	"github.com/philipp01105/jsconsole/core"
)

// MemoryHandler keeps printed entries in memory, for hosts that render them
// later (a devtools panel, an HTTP endpoint) and for tests.
type MemoryHandler struct {
	mu      sync.Mutex
	entries []core.Entry
	limit   int
	closed  bool
}

// NewMemoryHandler creates a handler retaining at most limit entries, oldest
// dropped first. A limit <= 0 keeps everything.
func NewMemoryHandler(limit int) *MemoryHandler {
	return &MemoryHandler{limit: limit}
}

// Handle stores a copy of the entry
func (h *MemoryHandler) Handle(entry *core.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrClosed
	}
	h.entries = append(h.entries, entry.Clone())
	if h.limit > 0 && len(h.entries) > h.limit {
		h.entries = h.entries[len(h.entries)-h.limit:]
	}
	return nil
}

// Entries returns a copy of the retained entries, oldest first
func (h *MemoryHandler) Entries() []core.Entry {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]core.Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Messages returns the message of every retained entry, oldest first
func (h *MemoryHandler) Messages() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]string, len(h.entries))
	for i, e := range h.entries {
		out[i] = e.Message
	}
	return out
}

// Search returns the retained entries whose message contains query
func (h *MemoryHandler) Search(query string) []core.Entry {
	h.mu.Lock()
	defer h.mu.Unlock()

	var out []core.Entry
	for _, e := range h.entries {
		if strings.Contains(e.Message, query) {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the number of retained entries
func (h *MemoryHandler) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Clear drops every retained entry
func (h *MemoryHandler) Clear() {
	h.mu.Lock()
	h.entries = nil
	h.mu.Unlock()
}

// Close stops accepting entries; retained entries stay readable
func (h *MemoryHandler) Close() error {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()
	return nil
}
