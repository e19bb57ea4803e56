package usecases

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"keygate.backend/internal/domain/entities"
	domainerrors "keygate.backend/internal/domain/errors"
	"keygate.backend/internal/domain/repositories"
	"keygate.backend/pkg/crypto"
)

var timeNow = time.Now

// AuthUsecase validates presented plaintext access keys
type AuthUsecase struct {
	keyRepo      repositories.AccessKeyRepository
	masterKey    string
	storeTimeout time.Duration
}

// NewAuthUsecase creates a new auth usecase. masterKey may be empty, which
// disables the bootstrap path entirely.
func NewAuthUsecase(keyRepo repositories.AccessKeyRepository, masterKey string, storeTimeout time.Duration) *AuthUsecase {
	return &AuthUsecase{
		keyRepo:      keyRepo,
		masterKey:    masterKey,
		storeTimeout: storeTimeout,
	}
}

// Authenticate checks a presented plaintext key. An unknown or revoked key is
// a normal invalid result, never an error; errors mean the store misbehaved.
func (u *AuthUsecase) Authenticate(ctx context.Context, presented string) (*entities.AuthResult, error) {
	key := strings.TrimSpace(presented)
	if key == "" {
		return &entities.AuthResult{}, nil
	}

	// Master key bootstrap: always admin, bypasses the key store so the
	// system is reachable before any key exists.
	if u.masterKey != "" && subtle.ConstantTimeCompare([]byte(key), []byte(u.masterKey)) == 1 {
		return &entities.AuthResult{Valid: true, IsAdmin: true}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, u.storeTimeout)
	defer cancel()

	keys, err := u.keyRepo.FindAll(ctx)
	if err != nil {
		return nil, mapStoreErr(err, "key store lookup timed out")
	}

	// Linear scan recomputing the salted digest per candidate. Fine at the
	// expected key counts; an indexed hash-prefix lookup is the upgrade path.
	for _, rec := range keys {
		if rec.IsRevoked {
			continue
		}
		if crypto.HashKey(key, rec.Salt) == rec.KeyHash {
			// Best-effort usage bump; losing it must not fail the login.
			_ = u.keyRepo.TouchUsage(ctx, rec.ID, timeNow())
			return &entities.AuthResult{Valid: true, IsAdmin: rec.IsAdmin, KeyID: rec.ID}, nil
		}
	}

	return &entities.AuthResult{}, nil
}

// mapStoreErr converts a deadline hit on a store call into the dedicated
// timeout error so handlers answer 504 instead of a generic 500.
func mapStoreErr(err error, timeoutMsg string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return domainerrors.GatewayTimeout(timeoutMsg)
	}
	return err
}
