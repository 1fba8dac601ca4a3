package mapper

import (
	"chatai-be/internal/entity"
	"chatai-be/internal/model"
)

type TalkMapper struct{}

func NewTalkMapper() *TalkMapper {
	return &TalkMapper{}
}

func (m *TalkMapper) ToEntity(t *model.Talk) *entity.Talk {
	if t == nil {
		return nil
	}
	return &entity.Talk{
		Id:        t.Id,
		Name:      t.Name,
		UserId:    t.UserId,
		IsDeleted: t.IsDeleted,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func (m *TalkMapper) ToModel(t *entity.Talk) *model.Talk {
	if t == nil {
		return nil
	}
	return &model.Talk{
		Id:        t.Id,
		Name:      t.Name,
		UserId:    t.UserId,
		IsDeleted: t.IsDeleted,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func (m *TalkMapper) ToEntities(models []*model.Talk) []*entity.Talk {
	entities := make([]*entity.Talk, len(models))
	for i, t := range models {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
