package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/logger"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/model"
)

// Manager maps session IDs to live sessions. Sessions are process-local and
// lost on restart.
type Manager struct {
	mu           sync.Mutex
	sessions     map[string]*Session
	defaultTheme model.Theme
	now          func() time.Time
}

// NewManager creates a manager whose new sessions start with defaultTheme.
func NewManager(defaultTheme model.Theme) *Manager {
	if defaultTheme == "" {
		defaultTheme = model.ThemeLight
	}
	return &Manager{
		sessions:     make(map[string]*Session),
		defaultTheme: defaultTheme,
		now:          time.Now,
	}
}

// SetClock replaces the time source. Intended for tests.
func (m *Manager) SetClock(now func() time.Time) {
	m.mu.Lock()
	m.now = now
	m.mu.Unlock()
}

// Get returns a live session and marks it used.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	now := m.now()
	m.mu.Unlock()
	if ok {
		s.touch(now)
	}
	return s, ok
}

// Create starts a session with empty history and the default theme.
func (m *Manager) Create() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := newSession(uuid.NewString(), m.defaultTheme, m.now())
	m.sessions[s.ID] = s
	logger.Debug("session created", "module", "session", "action", "create", "resource", "session", "result", "ok", "session_id", s.ID)
	return s
}

// GetOrCreate returns the session for id, or a new one when id is unknown.
func (m *Manager) GetOrCreate(id string) (*Session, bool) {
	if id != "" {
		if s, ok := m.Get(id); ok {
			return s, false
		}
	}
	return m.Create(), true
}

// End discards a session and its history.
func (m *Manager) End(id string) bool {
	m.mu.Lock()
	_, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if ok {
		logger.Debug("session ended", "module", "session", "action", "delete", "resource", "session", "result", "ok", "session_id", id)
	}
	return ok
}

// EvictIdle discards sessions unused for longer than ttl and returns how many
// were removed.
func (m *Manager) EvictIdle(ttl time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := m.now().Add(-ttl)
	evicted := 0
	for id, s := range m.sessions {
		if s.LastSeen().Before(cutoff) {
			delete(m.sessions, id)
			evicted++
		}
	}
	return evicted
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
