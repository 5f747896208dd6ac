package core

import (
	"sync"
	"time"
)

// Entry is a printed console message with all its metadata
type Entry struct {
	Time  time.Time
	Level Level
	// Message is the space-joined rendering of Args, or the trace label for
	// TraceLevel entries.
	Message string
	Args    []string
	// Stack is set for TraceLevel entries, innermost frame first
	Stack  []string
	Fields []Field
}

// Severity returns the severity derived from the entry's level
func (e *Entry) Severity() Severity {
	return e.Level.Severity()
}

// Clone returns a deep copy of the entry that is safe to keep after the
// original is returned to the pool.
func (e *Entry) Clone() Entry {
	c := Entry{
		Time:    e.Time,
		Level:   e.Level,
		Message: e.Message,
	}
	if len(e.Args) > 0 {
		c.Args = append([]string(nil), e.Args...)
	}
	if e.Stack != nil {
		c.Stack = append([]string{}, e.Stack...)
	}
	if len(e.Fields) > 0 {
		c.Fields = append([]Field(nil), e.Fields...)
	}
	return c
}

var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{
			Args:   make([]string, 0, 4),
			Fields: make([]Field, 0, 4),
		}
	},
}

// GetEntry retrieves a reset Entry from the pool
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Args = e.Args[:0]
	e.Fields = e.Fields[:0]
	e.Stack = nil
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	e.Message = ""
	e.Args = e.Args[:0]
	e.Fields = e.Fields[:0]
	e.Stack = nil
	entryPool.Put(e)
}
