package contract

import (
	"context"

	"chatai-be/internal/entity"
	"chatai-be/internal/repository/specification"

	"github.com/google/uuid"
)

type TalkRepository interface {
	Create(ctx context.Context, talk *entity.Talk) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Talk, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Talk, error)
	// UpdateNameScoped renames a talk only when (id, user_id) matches a live
	// row. Returns the updated talk, or nil when nothing matched — ownership
	// mismatch and nonexistence are indistinguishable.
	UpdateNameScoped(ctx context.Context, talkId, userId uuid.UUID, name string) (*entity.Talk, error)
	// SoftDeleteScoped tombstones under the same (id, user_id) guard and
	// reports whether a row was affected.
	SoftDeleteScoped(ctx context.Context, talkId, userId uuid.UUID) (bool, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
