package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"keygate.backend/internal/domain/entities"
	domainerrors "keygate.backend/internal/domain/errors"
	"keygate.backend/internal/domain/repositories"
	"keygate.backend/pkg/crypto"
)

var generateSessionToken = crypto.GenerateSessionToken

// SessionUsecase owns the session token lifecycle: issue on login, validate
// and renew on use, lazy-expire past the window, delete on logout.
type SessionUsecase struct {
	sessions     repositories.SessionRepository
	expiryWindow time.Duration
	storeTimeout time.Duration
}

// NewSessionUsecase creates a new session usecase
func NewSessionUsecase(sessions repositories.SessionRepository, expiryWindow, storeTimeout time.Duration) *SessionUsecase {
	return &SessionUsecase{
		sessions:     sessions,
		expiryWindow: expiryWindow,
		storeTimeout: storeTimeout,
	}
}

// ExpiryWindow returns the configured hard session lifetime.
func (u *SessionUsecase) ExpiryWindow() time.Duration {
	return u.expiryWindow
}

// Issue creates a session for an authenticated caller and returns the opaque
// token. The token is the credential; it is returned in plaintext exactly as
// stored for lookup.
func (u *SessionUsecase) Issue(ctx context.Context, isAdmin bool) (string, error) {
	token, err := generateSessionToken()
	if err != nil {
		return "", domainerrors.InternalError(err)
	}

	now := timeNow()
	session := &entities.Session{
		Token:      token,
		IsAdmin:    isAdmin,
		CreatedAt:  now,
		LastUsedAt: now,
	}

	ctx, cancel := context.WithTimeout(ctx, u.storeTimeout)
	defer cancel()

	if err := u.sessions.CreateSession(ctx, session, u.expiryWindow); err != nil {
		return "", mapStoreErr(err, "session store timed out")
	}
	return token, nil
}

// Validate checks a session token. An absent or unknown token is the normal
// "not logged in" state, never an error. A session older than the expiry
// window is deleted before reporting invalid.
func (u *SessionUsecase) Validate(ctx context.Context, token string) (*entities.SessionStatus, error) {
	if strings.TrimSpace(token) == "" {
		return &entities.SessionStatus{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, u.storeTimeout)
	defer cancel()

	session, err := u.sessions.GetSession(ctx, token)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return &entities.SessionStatus{}, nil
		}
		return nil, mapStoreErr(err, "session store timed out")
	}

	age := timeNow().Sub(session.CreatedAt)
	if age > u.expiryWindow {
		_ = u.sessions.DeleteSession(ctx, token)
		return &entities.SessionStatus{Expired: true}, nil
	}

	// Renew lastUsedAt with the remaining window as TTL so a touch never
	// extends the session past createdAt + window. Best-effort.
	session.LastUsedAt = timeNow()
	_ = u.sessions.TouchSession(ctx, session, u.expiryWindow-age)

	return &entities.SessionStatus{Valid: true, IsAdmin: session.IsAdmin}, nil
}

// Revoke deletes a session. Idempotent: revoking an absent or empty token
// succeeds, so logout never errors for an already logged-out client.
func (u *SessionUsecase) Revoke(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, u.storeTimeout)
	defer cancel()

	if err := u.sessions.DeleteSession(ctx, token); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil
		}
		return mapStoreErr(err, "session store timed out")
	}
	return nil
}
