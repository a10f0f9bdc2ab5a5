package session

import "sync"

// Store holds per-user conversation history, bounded to MaxHistory turns each.
//
// The outer RWMutex only guards the user→session map; each session carries its
// own mutex, so appends for different users never serialize against each
// other while appends for the same user do. Sessions are created lazily on
// first append and live until Clear — there is no idle expiry.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*userSession
}

type userSession struct {
	mu      sync.Mutex
	history *history
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*userSession),
	}
}

// Append records a turn for the user, creating the session if absent and
// evicting the oldest turn once the history exceeds MaxHistory.
func (s *Store) Append(userID string, role Role, text string) {
	sess := s.get(userID)

	sess.mu.Lock()
	sess.history.append(Turn{Role: role, Text: text})
	sess.mu.Unlock()
}

// History returns a snapshot copy of the user's turns in order.
// A user without a session gets an empty slice.
func (s *Store) History(userID string) []Turn {
	s.mu.RLock()
	sess, ok := s.sessions[userID]
	s.mu.RUnlock()

	if !ok {
		return nil
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.history.snapshot()
}

// Len reports the number of turns currently held for the user.
func (s *Store) Len(userID string) int {
	s.mu.RLock()
	sess, ok := s.sessions[userID]
	s.mu.RUnlock()

	if !ok {
		return 0
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.history.len()
}

// Clear removes the user's session entirely. Clearing an absent session is a
// no-op.
func (s *Store) Clear(userID string) {
	s.mu.Lock()
	delete(s.sessions, userID)
	s.mu.Unlock()
}

// get returns the user's session, creating it under the write lock if absent.
func (s *Store) get(userID string) *userSession {
	s.mu.RLock()
	sess, ok := s.sessions[userID]
	s.mu.RUnlock()

	if ok {
		return sess
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok = s.sessions[userID]; ok {
		return sess
	}

	sess = &userSession{history: newHistory(MaxHistory)}
	s.sessions[userID] = sess
	return sess
}
