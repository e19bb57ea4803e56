package usecases

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"keygate.backend/internal/domain/entities"
	domainerrors "keygate.backend/internal/domain/errors"
)

type mockAccessKeyRepo struct {
	createFn      func(ctx context.Context, key *entities.AccessKey) error
	findAllFn     func(ctx context.Context) ([]*entities.AccessKey, error)
	findByIDFn    func(ctx context.Context, id uuid.UUID) (*entities.AccessKey, error)
	markRevokedFn func(ctx context.Context, id uuid.UUID) error
	touchUsageFn  func(ctx context.Context, id uuid.UUID, usedAt time.Time) error

	touchCalls int
}

func (m *mockAccessKeyRepo) Create(ctx context.Context, key *entities.AccessKey) error {
	if m.createFn != nil {
		return m.createFn(ctx, key)
	}
	return nil
}

func (m *mockAccessKeyRepo) FindAll(ctx context.Context) ([]*entities.AccessKey, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, nil
}

func (m *mockAccessKeyRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.AccessKey, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (m *mockAccessKeyRepo) MarkRevoked(ctx context.Context, id uuid.UUID) error {
	if m.markRevokedFn != nil {
		return m.markRevokedFn(ctx, id)
	}
	return nil
}

func (m *mockAccessKeyRepo) TouchUsage(ctx context.Context, id uuid.UUID, usedAt time.Time) error {
	m.touchCalls++
	if m.touchUsageFn != nil {
		return m.touchUsageFn(ctx, id, usedAt)
	}
	return nil
}

// memorySessionRepo is an in-memory SessionRepository for lifecycle tests.
// TTLs are recorded but not enforced; expiry tests drive the clock instead.
type memorySessionRepo struct {
	mu       sync.Mutex
	sessions map[string]entities.Session
	ttls     map[string]time.Duration

	getErr    error
	createErr error
	deletes   int
}

func newMemorySessionRepo() *memorySessionRepo {
	return &memorySessionRepo{
		sessions: make(map[string]entities.Session),
		ttls:     make(map[string]time.Duration),
	}
}

func (m *memorySessionRepo) CreateSession(_ context.Context, session *entities.Session, ttl time.Duration) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.Token] = *session
	m.ttls[session.Token] = ttl
	return nil
}

func (m *memorySessionRepo) GetSession(_ context.Context, token string) (*entities.Session, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[token]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	out := s
	return &out, nil
}

func (m *memorySessionRepo) TouchSession(_ context.Context, session *entities.Session, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.Token] = *session
	m.ttls[session.Token] = ttl
	return nil
}

func (m *memorySessionRepo) DeleteSession(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletes++
	delete(m.sessions, token)
	delete(m.ttls, token)
	return nil
}
