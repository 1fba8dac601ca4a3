package entity

import (
	"time"

	"github.com/google/uuid"
)

type Talk struct {
	Id        uuid.UUID
	Name      string
	UserId    uuid.UUID
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
