package session

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	session  Session
	deadline time.Time
}

// MemoryStore is an in-process Store for single-instance deployments and tests
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryStore returns an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry), now: time.Now}
}

func (m *MemoryStore) Save(_ context.Context, s Session, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sweep()
	m.entries[s.ID] = memoryEntry{session: s, deadline: m.now().Add(ttl)}
	return nil
}

func (m *MemoryStore) Load(_ context.Context, id string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.live(id)
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	return e.session, nil
}

func (m *MemoryStore) Touch(_ context.Context, id string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.live(id)
	if !ok {
		return ErrSessionNotFound
	}
	e.deadline = m.now().Add(ttl)
	m.entries[id] = e
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, id)
	return nil
}

func (m *MemoryStore) DeleteByUser(_ context.Context, userID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, e := range m.entries {
		if e.session.UserID == userID {
			delete(m.entries, id)
		}
	}
	return nil
}

// live returns the entry for id, evicting it if expired. m.mu must be held.
func (m *MemoryStore) live(id string) (memoryEntry, bool) {
	e, ok := m.entries[id]
	if !ok {
		return memoryEntry{}, false
	}
	if !m.now().Before(e.deadline) {
		delete(m.entries, id)
		return memoryEntry{}, false
	}
	return e, true
}

// sweep drops every expired entry. m.mu must be held.
func (m *MemoryStore) sweep() {
	now := m.now()
	for id, e := range m.entries {
		if !now.Before(e.deadline) {
			delete(m.entries, id)
		}
	}
}
