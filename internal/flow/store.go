package flow

import "sync"

// Store persists per-user sessions between events. Implementations must hand
// back a fresh initial session for unknown users.
type Store interface {
	Get(userKey string) *Session
	Save(userKey string, s *Session) error
	Clear(userKey string)
}

// Manager is the in-memory Store.
type Manager struct {
	sessions map[string]*Session
	mu       sync.RWMutex
}

// NewManager creates a new in-memory session store.
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
	}
}

// Get returns the user's session, or a new initial one if none is stored.
func (m *Manager) Get(userKey string) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, exists := m.sessions[userKey]
	if !exists {
		return NewSession()
	}
	return s.clone()
}

// Save stores the session for a user.
func (m *Manager) Save(userKey string, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[userKey] = s.clone()
	return nil
}

// Clear removes the session for a user.
func (m *Manager) Clear(userKey string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userKey)
}
