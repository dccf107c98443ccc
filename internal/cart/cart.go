// Package cart keeps per-user shopping state in memory. State lives only
// for the lifetime of the process; a restart clears every cart.
package cart

import "sync"

// Line is one cart entry. Repeated additions of the same product append
// separate lines rather than merging quantities.
type Line struct {
	ProductID int64
	Quantity  int
}

// Selection marks a product awaiting a quantity choice.
type Selection struct {
	ProductID int64
}

// Session is the full conversational state for one user.
type Session struct {
	Lines   []Line
	Pending *Selection
}

type entry struct {
	mu      sync.Mutex
	session Session
}

// Store holds sessions keyed by Telegram user id. All methods are safe
// for concurrent use; mutations for one user are serialized.
type Store struct {
	mu      sync.RWMutex
	entries map[int64]*entry
}

func NewStore() *Store {
	return &Store{entries: make(map[int64]*entry)}
}

func (s *Store) entryFor(userID int64) *entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[userID]
	if !ok {
		e = &entry{}
		s.entries[userID] = e
	}
	return e
}

// Touch creates the user's session if it does not exist yet, without
// mutating it.
func (s *Store) Touch(userID int64) {
	s.entryFor(userID)
}

// Update runs fn against the user's session under its lock, creating the
// session on first touch.
func (s *Store) Update(userID int64, fn func(*Session)) {
	e := s.entryFor(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(&e.session)
}

// Snapshot returns a copy of the user's session without creating one.
func (s *Store) Snapshot(userID int64) Session {
	s.mu.RLock()
	e, ok := s.entries[userID]
	s.mu.RUnlock()
	if !ok {
		return Session{}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	out := Session{Lines: append([]Line(nil), e.session.Lines...)}
	if e.session.Pending != nil {
		sel := *e.session.Pending
		out.Pending = &sel
	}
	return out
}

// ClearCart empties the user's cart and drops any pending selection.
func (s *Store) ClearCart(userID int64) {
	s.mu.RLock()
	e, ok := s.entries[userID]
	s.mu.RUnlock()
	if !ok {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.session.Lines = nil
	e.session.Pending = nil
}

// Len reports how many user sessions exist.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
