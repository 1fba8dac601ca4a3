package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByTalkID struct {
	TalkID uuid.UUID
}

func (s ByTalkID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("talk_id = ?", s.TalkID)
}
