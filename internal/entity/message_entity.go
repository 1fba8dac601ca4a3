package entity

import (
	"time"

	"github.com/google/uuid"
)

type MessageType string

const (
	MessageTypeUser MessageType = "user"
	MessageTypeBot  MessageType = "bot"
)

type Message struct {
	Id        uuid.UUID
	Type      MessageType
	Content   string
	TalkId    uuid.UUID
	UserId    uuid.UUID // denormalized from the Talk for direct query scoping
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
