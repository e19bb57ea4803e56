package models

import (
	"time"

	"github.com/google/uuid"
)

type AccessKey struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	KeyHash    string    `gorm:"type:varchar(64);uniqueIndex;not null"` // SHA256 of salt||key
	Salt       string    `gorm:"type:varchar(32);not null"`
	Label      string    `gorm:"type:varchar(100)"`
	IsAdmin    bool      `gorm:"default:false;not null"`
	IsRevoked  bool      `gorm:"default:false;not null;index"`
	UsageCount int64     `gorm:"default:0;not null"`
	LastUsedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
