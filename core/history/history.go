// Package history keeps the lines submitted at the shell prompt.
package history

const DefaultCapacity = 1024

// Store is a bounded, insertion-ordered log of submitted lines. When an
// append would overflow it, the oldest entries are dropped as a batch so
// that only the newest Capacity()/2 survive, then the new entry is stored.
type Store struct {
	entries  [][]rune
	capacity int
}

func New(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{
		entries:  make([][]rune, 0, capacity),
		capacity: capacity,
	}
}

// Append takes ownership of entry.
func (s *Store) Append(entry []rune) {
	if len(s.entries) == s.capacity {
		s.evict()
	}
	s.entries = append(s.entries, entry)
}

func (s *Store) evict() {
	keep := s.capacity / 2
	n := copy(s.entries, s.entries[s.capacity-keep:])
	clear(s.entries[n:])
	s.entries = s.entries[:n]
}

func (s *Store) Len() int { return len(s.entries) }

func (s *Store) Capacity() int { return s.capacity }

// At returns the i-th entry, oldest first.
func (s *Store) At(i int) string {
	return string(s.entries[i])
}

// Entries returns the stored lines, oldest first.
func (s *Store) Entries() []string {
	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[i] = string(e)
	}
	return out
}

// Reset drops every entry.
func (s *Store) Reset() {
	clear(s.entries)
	s.entries = s.entries[:0]
}
