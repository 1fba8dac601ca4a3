package model

import (
	"time"

	"github.com/google/uuid"
)

// Soft delete is an explicit tombstone flag rather than gorm.DeletedAt:
// the cascade path must bump updated_at and report affected rows, and
// every read path filters on is_deleted itself.
type Talk struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:text;not null"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	IsDeleted bool      `gorm:"not null;default:false;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Talk) TableName() string {
	return "talks"
}
