package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// AccessKey represents an issued possession-based credential. The plaintext
// key is never part of this record; only its salted digest is kept.
type AccessKey struct {
	ID         uuid.UUID `json:"id"`
	KeyHash    string    `json:"-"`
	Salt       string    `json:"-"`
	Label      string    `json:"label"`
	IsAdmin    bool      `json:"isAdmin"`
	IsRevoked  bool      `json:"isRevoked"`
	UsageCount int64     `json:"usageCount"`
	LastUsedAt null.Time `json:"lastUsedAt,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// AccessKeyMetadata is the listing view of a key. It deliberately has no
// hash or salt fields so secrets cannot leak through the list endpoint.
type AccessKeyMetadata struct {
	ID         uuid.UUID  `json:"id"`
	Label      string     `json:"label"`
	IsAdmin    bool       `json:"isAdmin"`
	IsRevoked  bool       `json:"isRevoked"`
	UsageCount int64      `json:"usageCount"`
	LastUsedAt *time.Time `json:"lastUsedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// Metadata strips the secret-bearing fields for listing.
func (k *AccessKey) Metadata() AccessKeyMetadata {
	m := AccessKeyMetadata{
		ID:         k.ID,
		Label:      k.Label,
		IsAdmin:    k.IsAdmin,
		IsRevoked:  k.IsRevoked,
		UsageCount: k.UsageCount,
		CreatedAt:  k.CreatedAt,
	}
	if k.LastUsedAt.Valid {
		t := k.LastUsedAt.Time
		m.LastUsedAt = &t
	}
	return m
}

type CreateAccessKeyInput struct {
	Label   string `json:"label"`
	IsAdmin bool   `json:"isAdmin"`
}

// CreateAccessKeyResponse carries the plaintext key back to the caller.
// This is the only time the plaintext is ever disclosed.
type CreateAccessKeyResponse struct {
	KeyID     uuid.UUID `json:"keyId"`
	Key       string    `json:"key"`
	Label     string    `json:"label"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}
