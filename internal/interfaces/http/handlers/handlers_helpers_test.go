package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"keygate.backend/internal/domain/entities"
	domainerrors "keygate.backend/internal/domain/errors"
	"keygate.backend/internal/usecases"
	"keygate.backend/pkg/crypto"
)

const testStoreTimeout = 5 * time.Second

type accessKeyRepoStub struct {
	createFn      func(ctx context.Context, key *entities.AccessKey) error
	findAllFn     func(ctx context.Context) ([]*entities.AccessKey, error)
	findByIDFn    func(ctx context.Context, id uuid.UUID) (*entities.AccessKey, error)
	markRevokedFn func(ctx context.Context, id uuid.UUID) error
}

func (s *accessKeyRepoStub) Create(ctx context.Context, key *entities.AccessKey) error {
	if s.createFn != nil {
		return s.createFn(ctx, key)
	}
	return nil
}

func (s *accessKeyRepoStub) FindAll(ctx context.Context) ([]*entities.AccessKey, error) {
	if s.findAllFn != nil {
		return s.findAllFn(ctx)
	}
	return []*entities.AccessKey{}, nil
}

func (s *accessKeyRepoStub) FindByID(ctx context.Context, id uuid.UUID) (*entities.AccessKey, error) {
	if s.findByIDFn != nil {
		return s.findByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *accessKeyRepoStub) MarkRevoked(ctx context.Context, id uuid.UUID) error {
	if s.markRevokedFn != nil {
		return s.markRevokedFn(ctx, id)
	}
	return nil
}

func (s *accessKeyRepoStub) TouchUsage(context.Context, uuid.UUID, time.Time) error {
	return nil
}

type sessionRepoStub struct {
	sessions map[string]entities.Session
}

func newSessionRepoStub() *sessionRepoStub {
	return &sessionRepoStub{sessions: make(map[string]entities.Session)}
}

func (s *sessionRepoStub) CreateSession(_ context.Context, session *entities.Session, _ time.Duration) error {
	s.sessions[session.Token] = *session
	return nil
}

func (s *sessionRepoStub) GetSession(_ context.Context, token string) (*entities.Session, error) {
	sess, ok := s.sessions[token]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	out := sess
	return &out, nil
}

func (s *sessionRepoStub) TouchSession(_ context.Context, session *entities.Session, _ time.Duration) error {
	s.sessions[session.Token] = *session
	return nil
}

func (s *sessionRepoStub) DeleteSession(_ context.Context, token string) error {
	delete(s.sessions, token)
	return nil
}

// seedAccessKey builds a stored key record whose plaintext is known to the test.
func seedAccessKey(t *testing.T, plaintext string, isAdmin bool) *entities.AccessKey {
	t.Helper()
	salt, err := crypto.NewSalt()
	require.NoError(t, err)
	return &entities.AccessKey{
		ID:        uuid.New(),
		KeyHash:   crypto.HashKey(plaintext, salt),
		Salt:      salt,
		IsAdmin:   isAdmin,
		CreatedAt: time.Now(),
	}
}

func newSessionUsecase(repo *sessionRepoStub) *usecases.SessionUsecase {
	return usecases.NewSessionUsecase(repo, 24*time.Hour, testStoreTimeout)
}
