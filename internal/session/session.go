// Package session holds per-user state: theme, translation history and the
// conversation turn machine.
package session

import (
	"sync"
	"time"

	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/model"
)

// Session is the explicit context passed to every orchestrator call.
type Session struct {
	ID string

	// action serializes orchestrator work for this session.
	action sync.Mutex

	mu           sync.RWMutex
	theme        model.Theme
	conversation Conversation
	lastSeen     time.Time

	history *History
}

func newSession(id string, theme model.Theme, now time.Time) *Session {
	return &Session{
		ID:       id,
		theme:    theme,
		lastSeen: now,
		history:  NewHistory(),
	}
}

// Lock blocks until no other action runs on the session.
func (s *Session) Lock() { s.action.Lock() }

// Unlock releases the action lock.
func (s *Session) Unlock() { s.action.Unlock() }

// History returns the session's own record store.
func (s *Session) History() *History {
	return s.history
}

func (s *Session) Theme() model.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

func (s *Session) SetTheme(theme model.Theme) {
	s.mu.Lock()
	s.theme = theme
	s.mu.Unlock()
}

// Conversation returns a snapshot of the conversation state.
func (s *Session) Conversation() Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.conversation
}

// UpdateConversation applies fn to the conversation state under the lock.
func (s *Session) UpdateConversation(fn func(c *Conversation)) Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.conversation)
	return s.conversation
}

// LastSeen is the last time the session was used.
func (s *Session) LastSeen() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastSeen
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	if now.After(s.lastSeen) {
		s.lastSeen = now
	}
	s.mu.Unlock()
}
