package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message is a single text message inside a chat. ChatID is a back
// reference only; the chat owns the message. Receivers keeps the receiver
// set as given by the client at creation time, it plays no further role
// after chat resolution.
type Message struct {
	ID        uuid.UUID
	ChatID    uuid.UUID
	SenderID  uuid.UUID
	Receivers []uuid.UUID
	Content   string
	Permanent bool
	At        time.Time
}

// Expired reports whether the message is eligible for the retention sweep
// at the given cutoff. Permanent messages never expire.
func (m Message) Expired(cutoff time.Time) bool {
	return !m.Permanent && m.At.Before(cutoff)
}
