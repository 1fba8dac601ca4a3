package implementation

import (
	"context"
	"errors"
	"time"

	"chatai-be/internal/entity"
	"chatai-be/internal/mapper"
	"chatai-be/internal/model"
	"chatai-be/internal/repository/contract"
	"chatai-be/internal/repository/scope"
	"chatai-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TalkRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TalkMapper
}

func NewTalkRepository(db *gorm.DB) contract.TalkRepository {
	return &TalkRepositoryImpl{
		db:     db,
		mapper: mapper.NewTalkMapper(),
	}
}

func (r *TalkRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TalkRepositoryImpl) Create(ctx context.Context, talk *entity.Talk) error {
	m := r.mapper.ToModel(talk)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*talk = *r.mapper.ToEntity(m)
	return nil
}

func (r *TalkRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Talk, error) {
	var m model.Talk
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TalkRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Talk, error) {
	var models []*model.Talk
	query := r.applySpecifications(r.db.WithContext(ctx).Scopes(scope.OrderByCreatedDesc), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

// The (id, user_id, is_deleted=false) guard lives in the WHERE clause so the
// existence check and the ownership check are a single atomic statement.
func (r *TalkRepositoryImpl) UpdateNameScoped(ctx context.Context, talkId, userId uuid.UUID, name string) (*entity.Talk, error) {
	res := r.db.WithContext(ctx).Model(&model.Talk{}).
		Where("id = ? AND user_id = ? AND is_deleted = ?", talkId, userId, false).
		Updates(map[string]interface{}{"name": name, "updated_at": time.Now()})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindOne(ctx, specification.ByID{ID: talkId}, specification.NotDeleted{})
}

func (r *TalkRepositoryImpl) SoftDeleteScoped(ctx context.Context, talkId, userId uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Talk{}).
		Where("id = ? AND user_id = ? AND is_deleted = ?", talkId, userId, false).
		Updates(map[string]interface{}{"is_deleted": true, "updated_at": time.Now()})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *TalkRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Talk{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
