package session

import (
	"context"
	"sync"

	"github.com/maisondecafe/kiosk-bot/internal/locale"
)

// MemoryStore keeps all state in process memory. It backs the file store and
// is used directly in tests.
type MemoryStore struct {
	mu          sync.RWMutex
	defaultLang locale.Language
	sessions    map[int64]*Session
	blocked     map[int64]struct{}
}

func NewMemoryStore(defaultLang locale.Language) *MemoryStore {
	return &MemoryStore{
		defaultLang: defaultLang,
		sessions:    make(map[int64]*Session),
		blocked:     make(map[int64]struct{}),
	}
}

func (m *MemoryStore) Get(_ context.Context, userID int64) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[userID]
	if !ok {
		s = newSession(userID, m.defaultLang)
		m.sessions[userID] = s
	}

	cp := *s

	return &cp, nil
}

func (m *MemoryStore) Put(_ context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *s
	m.sessions[s.UserID] = &cp

	return nil
}

func (m *MemoryStore) Block(_ context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.blocked[userID] = struct{}{}

	return nil
}

func (m *MemoryStore) Unblock(_ context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.blocked, userID)

	return nil
}

func (m *MemoryStore) IsBlocked(_ context.Context, userID int64) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.blocked[userID]

	return ok, nil
}

func (m *MemoryStore) Stats(_ context.Context) (Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	st := Stats{Sessions: len(m.sessions), Blocked: len(m.blocked)}

	for _, s := range m.sessions {
		if s.ThreadID != "" {
			st.Threads++
		}

		if s.Lead != nil && s.Lead.Step != LeadNone {
			st.Leads++
		}
	}

	return st, nil
}

func (m *MemoryStore) Ping(_ context.Context) error { return nil }

func (m *MemoryStore) Close() error { return nil }

// snapshot copies the persistable state under the read lock.
func (m *MemoryStore) snapshot() (map[int64]*Session, []int64) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sessions := make(map[int64]*Session, len(m.sessions))
	for id, s := range m.sessions {
		cp := *s
		sessions[id] = &cp
	}

	blocked := make([]int64, 0, len(m.blocked))
	for id := range m.blocked {
		blocked = append(blocked, id)
	}

	return sessions, blocked
}

// restore replaces the in-memory state, used when loading the state file.
func (m *MemoryStore) restore(sessions map[int64]*Session, blocked []int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, s := range sessions {
		s.UserID = id
		if !locale.Valid(string(s.Language)) {
			s.Language = m.defaultLang
		}

		m.sessions[id] = s
	}

	for _, id := range blocked {
		m.blocked[id] = struct{}{}
	}
}
