package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is one live login. A JWT is only honored while its session exists.
type Session struct {
	ID        string
	Email     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// SessionStore tracks live sessions. Injected into the handlers and the
// middleware so implementations can be swapped without global state.
type SessionStore interface {
	// Create opens a session for the given account and returns it
	Create(email string, ttl time.Duration) (*Session, error)
	// Get returns a live session, or false when absent or expired
	Get(id string) (*Session, bool)
	// Destroy ends a session. Destroying an unknown session is a no-op.
	Destroy(id string)
	// DestroyAllForEmail ends every session belonging to one account
	DestroyAllForEmail(email string)
}

// MemorySessionStore is an in-memory SessionStore. Safe for concurrent use.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewMemorySessionStore returns an empty session store
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]*Session),
	}
}

// Create opens a session with a random ID
func (s *MemorySessionStore) Create(email string, ttl time.Duration) (*Session, error) {
	now := time.Now()
	session := &Session{
		ID:        uuid.NewString(),
		Email:     email,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return session, nil
}

// Get returns a session if it exists and has not expired. Expired sessions
// are reaped lazily on access.
func (s *MemorySessionStore) Get(id string) (*Session, bool) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(session.ExpiresAt) {
		s.Destroy(id)
		return nil, false
	}
	return session, true
}

// Destroy removes a session
func (s *MemorySessionStore) Destroy(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// DestroyAllForEmail removes every session for one account
func (s *MemorySessionStore) DestroyAllForEmail(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, session := range s.sessions {
		if session.Email == email {
			delete(s.sessions, id)
		}
	}
}
