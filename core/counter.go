package core

// DefaultCountLabel is used by count and countReset when no label is given
const DefaultCountLabel = "default"

// CounterStore maps count labels to their current count. It belongs to a
// single console and is not safe for concurrent use.
type CounterStore struct {
	counts map[string]uint64
}

// NewCounterStore creates an empty store
func NewCounterStore() *CounterStore {
	return &CounterStore{counts: make(map[string]uint64)}
}

// Increment adds one to label's count, starting at 1 for unseen labels, and
// returns the new count.
func (s *CounterStore) Increment(label string) uint64 {
	s.counts[label]++
	return s.counts[label]
}

// Reset sets label's count to zero. It reports false, and creates nothing,
// when label was never counted.
func (s *CounterStore) Reset(label string) bool {
	if _, ok := s.counts[label]; !ok {
		return false
	}
	s.counts[label] = 0
	return true
}

// Get returns label's count and whether it was ever counted
func (s *CounterStore) Get(label string) (uint64, bool) {
	n, ok := s.counts[label]
	return n, ok
}

// Len returns the number of known labels
func (s *CounterStore) Len() int {
	return len(s.counts)
}
