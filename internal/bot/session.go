package bot

import (
	"sync"
	"time"
)

// Session is one chat's in-progress round. The round goroutine blocks in
// Await while callbacks deliver answers through Decide.
type Session struct {
	ChatID   int64
	PlayerID string

	timeout time.Duration
	mu      sync.Mutex
	pending chan bool
}

func NewSession(chatID int64, playerID string, timeout time.Duration) *Session {
	return &Session{
		ChatID:   chatID,
		PlayerID: playerID,
		timeout:  timeout,
	}
}

// Await registers for an answer, calls prompt and waits. No answer within the
// timeout means stand.
func (s *Session) Await(prompt func()) bool {
	ch := make(chan bool, 1)

	s.mu.Lock()
	s.pending = ch
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		if s.pending == ch {
			s.pending = nil
		}
		s.mu.Unlock()
	}()

	prompt()

	timer := time.NewTimer(s.timeout)
	defer timer.Stop()

	select {
	case hit := <-ch:
		return hit
	case <-timer.C:
		return false
	}
}

// Decide answers the pending prompt. It reports false when nothing is
// waiting, e.g. a button pressed twice.
func (s *Session) Decide(hit bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending == nil {
		return false
	}
	s.pending <- hit
	s.pending = nil
	return true
}

func (s *Session) Waiting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending != nil
}

// Manager tracks active sessions by chat.
type Manager struct {
	sessions map[int64]*Session
	mu       sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		sessions: make(map[int64]*Session),
	}
}

func (m *Manager) Get(chatID int64) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[chatID]
}

// Start stores s unless the chat already has a session.
func (m *Manager) Start(s *Session) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[s.ChatID]; ok {
		return false
	}
	m.sessions[s.ChatID] = s
	return true
}

func (m *Manager) Delete(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, chatID)
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
