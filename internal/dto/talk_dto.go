package dto

import (
	"time"

	"github.com/google/uuid"
)

type TalkDTO struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"create_at"`
	UpdatedAt time.Time `json:"update_at"`
}

type StartTalkRequest struct {
	Message string `json:"message" validate:"required"`
}

type StartTalkResponseTalk struct {
	TalkId    uuid.UUID `json:"talk_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type StartTalkResponse struct {
	Talk      StartTalkResponseTalk `json:"talk"`
	Messages  []MessageDTO          `json:"messages"`
	N8nStatus string                `json:"n8n_status"` // "success" | "error"
}

type UpdateTalkRequest struct {
	TalkId uuid.UUID `json:"talk_id" validate:"required"`
	Name   string    `json:"name" validate:"required"`
}

type UpdateTalkResponse struct {
	Message string  `json:"message"`
	Talk    TalkDTO `json:"talk"`
}
