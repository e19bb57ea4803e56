package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"keygate.backend/internal/domain/entities"
	domainerrors "keygate.backend/internal/domain/errors"
	"keygate.backend/internal/infrastructure/models"
)

// AccessKeyRepository implements access key data operations
type AccessKeyRepository struct {
	db *gorm.DB
}

// NewAccessKeyRepository creates a new access key repository
func NewAccessKeyRepository(db *gorm.DB) *AccessKeyRepository {
	return &AccessKeyRepository{db: db}
}

// Create inserts a new access key record
func (r *AccessKeyRepository) Create(ctx context.Context, key *entities.AccessKey) error {
	if key.ID == uuid.Nil {
		key.ID = uuid.New()
	}
	m := &models.AccessKey{
		ID:         key.ID,
		KeyHash:    key.KeyHash,
		Salt:       key.Salt,
		Label:      key.Label,
		IsAdmin:    key.IsAdmin,
		IsRevoked:  key.IsRevoked,
		UsageCount: key.UsageCount,
		LastUsedAt: key.LastUsedAt.Ptr(),
		CreatedAt:  key.CreatedAt,
		UpdatedAt:  key.UpdatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// FindAll returns every access key record, newest first. Revoked keys are
// included; the authenticator filters them so revocation stays observable.
func (r *AccessKeyRepository) FindAll(ctx context.Context) ([]*entities.AccessKey, error) {
	var keyModels []models.AccessKey
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&keyModels).Error; err != nil {
		return nil, err
	}

	keys := make([]*entities.AccessKey, 0, len(keyModels))
	for _, m := range keyModels {
		model := m
		keys = append(keys, toEntity(&model))
	}
	return keys, nil
}

// FindByID gets an access key by ID
func (r *AccessKeyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.AccessKey, error) {
	var m models.AccessKey
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toEntity(&m), nil
}

// MarkRevoked sets the terminal revocation flag. Idempotent: revoking an
// already revoked key succeeds without touching the row again.
func (r *AccessKeyRepository) MarkRevoked(ctx context.Context, id uuid.UUID) error {
	var m models.AccessKey
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainerrors.ErrNotFound
		}
		return err
	}
	if m.IsRevoked {
		return nil
	}

	return r.db.WithContext(ctx).
		Model(&models.AccessKey{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_revoked": true,
			"updated_at": time.Now(),
		}).Error
}

// TouchUsage bumps the usage counter and last-used timestamp
func (r *AccessKeyRepository) TouchUsage(ctx context.Context, id uuid.UUID, usedAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&models.AccessKey{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"usage_count":  gorm.Expr("usage_count + 1"),
			"last_used_at": usedAt,
			"updated_at":   usedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func toEntity(m *models.AccessKey) *entities.AccessKey {
	return &entities.AccessKey{
		ID:         m.ID,
		KeyHash:    m.KeyHash,
		Salt:       m.Salt,
		Label:      m.Label,
		IsAdmin:    m.IsAdmin,
		IsRevoked:  m.IsRevoked,
		UsageCount: m.UsageCount,
		LastUsedAt: null.TimeFromPtr(m.LastUsedAt),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
