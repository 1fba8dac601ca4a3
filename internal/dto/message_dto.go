package dto

import (
	"time"

	"github.com/google/uuid"
)

type MessageDTO struct {
	Id        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Content   string    `json:"content"`
	TalkId    uuid.UUID `json:"talk_id"`
	UserId    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"create_at"`
}

type SendMessageRequest struct {
	TalkId  uuid.UUID `json:"talk_id" validate:"required"`
	Content string    `json:"content" validate:"required"`
}

type SendMessageResponse struct {
	Messages  []MessageDTO `json:"messages"`
	N8nStatus string       `json:"n8n_status"` // "success" | "error"
}
