package contract

import (
	"context"

	"chatai-be/internal/entity"
	"chatai-be/internal/repository/specification"

	"github.com/google/uuid"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error)
	// SoftDeleteByTalk tombstones every live message of a talk. It is not
	// scoped by user: callers must have validated talk ownership immediately
	// before invoking it.
	SoftDeleteByTalk(ctx context.Context, talkId uuid.UUID) (bool, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
