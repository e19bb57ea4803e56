package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"keygate.backend/internal/domain/entities"
	domainerrors "keygate.backend/internal/domain/errors"
	"keygate.backend/internal/domain/repositories"
	"keygate.backend/pkg/crypto"
)

var (
	generateAccessKey = crypto.GenerateAccessKey
	newSalt           = crypto.NewSalt
)

// AccessKeyUsecase implements the admin-gated key management operations
type AccessKeyUsecase struct {
	keyRepo      repositories.AccessKeyRepository
	storeTimeout time.Duration
}

// NewAccessKeyUsecase creates a new access key usecase
func NewAccessKeyUsecase(keyRepo repositories.AccessKeyRepository, storeTimeout time.Duration) *AccessKeyUsecase {
	return &AccessKeyUsecase{
		keyRepo:      keyRepo,
		storeTimeout: storeTimeout,
	}
}

// CreateAccessKey issues a new key and returns the plaintext exactly once.
// Only the salted digest is persisted; the plaintext is unrecoverable after
// this response.
func (u *AccessKeyUsecase) CreateAccessKey(ctx context.Context, input *entities.CreateAccessKeyInput) (*entities.CreateAccessKeyResponse, error) {
	plaintext, err := generateAccessKey()
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	salt, err := newSalt()
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	now := timeNow()
	key := &entities.AccessKey{
		ID:        uuid.New(),
		KeyHash:   crypto.HashKey(plaintext, salt),
		Salt:      salt,
		Label:     input.Label,
		IsAdmin:   input.IsAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	}

	ctx, cancel := context.WithTimeout(ctx, u.storeTimeout)
	defer cancel()

	if err := u.keyRepo.Create(ctx, key); err != nil {
		return nil, mapStoreErr(err, "key store timed out")
	}

	return &entities.CreateAccessKeyResponse{
		KeyID:     key.ID,
		Key:       plaintext, // shown once
		Label:     key.Label,
		IsAdmin:   key.IsAdmin,
		CreatedAt: key.CreatedAt,
	}, nil
}

// ListAccessKeys returns metadata for every issued key, never hashes or salts.
func (u *AccessKeyUsecase) ListAccessKeys(ctx context.Context) ([]entities.AccessKeyMetadata, error) {
	ctx, cancel := context.WithTimeout(ctx, u.storeTimeout)
	defer cancel()

	keys, err := u.keyRepo.FindAll(ctx)
	if err != nil {
		return nil, mapStoreErr(err, "key store timed out")
	}

	metadata := make([]entities.AccessKeyMetadata, 0, len(keys))
	for _, key := range keys {
		metadata = append(metadata, key.Metadata())
	}
	return metadata, nil
}

// RevokeAccessKey permanently disables a key. Idempotent for already revoked
// keys; unknown ids surface ErrNotFound.
func (u *AccessKeyUsecase) RevokeAccessKey(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, u.storeTimeout)
	defer cancel()

	if err := u.keyRepo.MarkRevoked(ctx, id); err != nil {
		return mapStoreErr(err, "key store timed out")
	}
	return nil
}
