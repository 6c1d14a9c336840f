package repository

import (
	"sync"

	"github.com/johnper68/twilio-bot-occipedido/internal/domain/entities"
	"github.com/johnper68/twilio-bot-occipedido/internal/usecase/interfaces"
)

// SessionMemoryStore keeps conversation sessions in process memory, one per
// normalized sender id. Sessions are created on first lookup and never
// expire; state is lost on restart, which is an accepted design constraint
// of this bot.
type SessionMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*entities.Session
}

var _ interfaces.ISessionStore = (*SessionMemoryStore)(nil)

func NewSessionMemoryStore() *SessionMemoryStore {
	return &SessionMemoryStore{sessions: make(map[string]*entities.Session)}
}

// Get returns the session for a sender, creating a fresh one if absent. The
// returned pointer is stable: later calls for the same sender return the
// same session, so its mutex can serialize turns.
func (s *SessionMemoryStore) Get(senderID string) *entities.Session {
	s.mu.RLock()
	session, ok := s.sessions[senderID]
	s.mu.RUnlock()
	if ok {
		return session
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if session, ok := s.sessions[senderID]; ok {
		return session
	}
	session = entities.NewSession(senderID)
	s.sessions[senderID] = session
	return session
}

// Len reports how many sessions are currently tracked.
func (s *SessionMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
