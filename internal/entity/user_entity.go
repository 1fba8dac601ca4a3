// FILE: internal/entity/user_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is provisioned out of band; this service only reads it for login.
type User struct {
	Id           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Sector       string
	Position     string
	IsDeleted    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
