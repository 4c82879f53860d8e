package router

// Entry is a single position in the navigation stack.
// State holds whatever UI state the screen attached before it was left
// (query text, focus, scroll position) and is handed back when the entry
// becomes current again.
type Entry struct {
	Route Route
	State any
}

// Stack holds the live back stack plus the snapshots of entries that were
// popped with SaveState. Snapshots are keyed by route path.
type Stack struct {
	entries []Entry
	saved   map[string]any
}

// NewStack creates a new empty navigation stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]Entry, 0, 2),
		saved:   make(map[string]any),
	}
}

// Push adds a new entry to the top of the stack.
func (s *Stack) Push(route Route, state any) {
	s.entries = append(s.entries, Entry{
		Route: route,
		State: state,
	})
}

// Pop removes and returns the top entry from the stack.
// Returns nil if the stack is empty.
func (s *Stack) Pop() *Entry {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// Peek returns the top entry without removing it.
// Returns nil if the stack is empty.
func (s *Stack) Peek() *Entry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

// IndexOf returns the position of the topmost entry of the given kind, or -1.
func (s *Stack) IndexOf(kind Kind) int {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].Route.Kind() == kind {
			return i
		}
	}
	return -1
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the live entries, bottom first.
func (s *Stack) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Save stores a snapshot under key, replacing any earlier one.
func (s *Stack) Save(key string, state any) {
	s.saved[key] = state
}

// Saved returns the snapshot stored under key without consuming it.
func (s *Stack) Saved(key string) (any, bool) {
	state, ok := s.saved[key]
	return state, ok
}

// Take returns and forgets the snapshot stored under key.
func (s *Stack) Take(key string) (any, bool) {
	state, ok := s.saved[key]
	if ok {
		delete(s.saved, key)
	}
	return state, ok
}
