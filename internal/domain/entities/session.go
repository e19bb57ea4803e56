package entities

import (
	"time"

	"github.com/google/uuid"
)

// Session is a server-side record for an issued session token. The token is
// the lookup key and is not serialized with the record body.
type Session struct {
	Token      string    `json:"-"`
	IsAdmin    bool      `json:"isAdmin"`
	CreatedAt  time.Time `json:"createdAt"`
	LastUsedAt time.Time `json:"lastUsedAt"`
}

// AuthResult is the outcome of validating a presented plaintext key.
// An invalid key is a normal result, not an error.
type AuthResult struct {
	Valid   bool
	IsAdmin bool
	// KeyID identifies the matched access key; uuid.Nil for the master key.
	KeyID uuid.UUID
}

// SessionStatus is the outcome of validating a session token. Expired is set
// when the session existed but aged past the expiry window and was deleted.
type SessionStatus struct {
	Valid   bool
	IsAdmin bool
	Expired bool
}

type LoginInput struct {
	Key string `json:"key" binding:"required"`
}
