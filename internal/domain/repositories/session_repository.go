package repositories

import (
	"context"
	"time"

	"keygate.backend/internal/domain/entities"
)

type SessionRepository interface {
	CreateSession(ctx context.Context, session *entities.Session, ttl time.Duration) error
	// GetSession returns domainerrors.ErrNotFound for a missing or already
	// expired token.
	GetSession(ctx context.Context, token string) (*entities.Session, error)
	// TouchSession rewrites the record with an updated lastUsedAt. The ttl is
	// the remaining validity window; touching never extends it.
	TouchSession(ctx context.Context, session *entities.Session, ttl time.Duration) error
	DeleteSession(ctx context.Context, token string) error
}
