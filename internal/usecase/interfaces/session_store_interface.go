package interfaces

import "github.com/johnper68/twilio-bot-occipedido/internal/domain/entities"

// ISessionStore is the process-wide mapping from normalized sender id to
// conversation session.
//
// Lifecycle: create-on-first-contact, mutate-per-turn, reset-in-place on
// completion. Sessions never expire and the returned pointer is stable for
// the life of the process; callers lock the session for the duration of a
// turn.
type ISessionStore interface {
	Get(senderID string) *entities.Session
}
