package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"keygate.backend/internal/domain/entities"
)

type AccessKeyRepository interface {
	Create(ctx context.Context, key *entities.AccessKey) error
	FindAll(ctx context.Context) ([]*entities.AccessKey, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entities.AccessKey, error)
	// MarkRevoked flips the terminal revocation flag. Revoking an already
	// revoked key is not an error.
	MarkRevoked(ctx context.Context, id uuid.UUID) error
	// TouchUsage bumps usage_count and sets last_used_at.
	TouchUsage(ctx context.Context, id uuid.UUID, usedAt time.Time) error
}
