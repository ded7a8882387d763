// Package domain contains the core concepts of the messenger.
// No storage, network, or UI logic should be added here.
package domain

import (
	"github.com/google/uuid"
)

// User is an account in the directory. PasswordHash is an encoded
// Argon2id hash, never a plain password.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	FirstName    string
	Surname      string
	Contacts     []uuid.UUID
}

// Summary is the shareable subset of a user, safe to return to other users.
type Summary struct {
	ID        uuid.UUID
	Username  string
	FirstName string
	Surname   string
}

func (u User) Summary() Summary {
	return Summary{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		Surname:   u.Surname,
	}
}

// HasContact reports whether id is on the user's contact list.
func (u User) HasContact(id uuid.UUID) bool {
	for _, c := range u.Contacts {
		if c == id {
			return true
		}
	}
	return false
}
