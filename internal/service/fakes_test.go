package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"chatai-be/internal/entity"
	"chatai-be/internal/repository/contract"
	"chatai-be/internal/repository/specification"
	"chatai-be/internal/repository/unitofwork"
	"chatai-be/pkg/n8n"

	"github.com/google/uuid"
)

// In-memory doubles for the repository contracts. They interpret the same
// specification values the GORM implementations translate to SQL, so the
// services under test run against the real query semantics.

type memDB struct {
	users    []*entity.User
	talks    []*entity.Talk
	messages []*entity.Message
}

type fakeFactory struct {
	db *memDB
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{db: &memDB{}}
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUnitOfWork{db: f.db}
}

type fakeUnitOfWork struct {
	db *memDB
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository {
	return &fakeUserRepository{db: u.db}
}

func (u *fakeUnitOfWork) TalkRepository() contract.TalkRepository {
	return &fakeTalkRepository{db: u.db}
}

func (u *fakeUnitOfWork) MessageRepository() contract.MessageRepository {
	return &fakeMessageRepository{db: u.db}
}

// --- users ---

type fakeUserRepository struct {
	db *memDB
}

func (r *fakeUserRepository) Create(ctx context.Context, user *entity.User) error {
	r.db.users = append(r.db.users, user)
	return nil
}

func (r *fakeUserRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, u := range r.db.users {
		if userMatches(u, specs) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var n int64
	for _, u := range r.db.users {
		if userMatches(u, specs) {
			n++
		}
	}
	return n, nil
}

func userMatches(u *entity.User, specs []specification.Specification) bool {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.ByID:
			if u.Id != sp.ID {
				return false
			}
		case specification.ByEmail:
			if u.Email != sp.Email {
				return false
			}
		case specification.ByNameLike:
			if !strings.Contains(strings.ToLower(u.Name), strings.ToLower(sp.Name)) {
				return false
			}
		case specification.NotDeleted:
			if u.IsDeleted {
				return false
			}
		}
	}
	return true
}

// --- talks ---

type fakeTalkRepository struct {
	db *memDB
}

func (r *fakeTalkRepository) Create(ctx context.Context, talk *entity.Talk) error {
	r.db.talks = append(r.db.talks, talk)
	return nil
}

func (r *fakeTalkRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Talk, error) {
	for _, t := range r.db.talks {
		if talkMatches(t, specs) {
			copied := *t
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeTalkRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Talk, error) {
	var result []*entity.Talk
	for _, t := range r.db.talks {
		if talkMatches(t, specs) {
			copied := *t
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeTalkRepository) UpdateNameScoped(ctx context.Context, talkId, userId uuid.UUID, name string) (*entity.Talk, error) {
	for _, t := range r.db.talks {
		if t.Id == talkId && t.UserId == userId && !t.IsDeleted {
			t.Name = name
			t.UpdatedAt = time.Now()
			copied := *t
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeTalkRepository) SoftDeleteScoped(ctx context.Context, talkId, userId uuid.UUID) (bool, error) {
	for _, t := range r.db.talks {
		if t.Id == talkId && t.UserId == userId && !t.IsDeleted {
			t.IsDeleted = true
			t.UpdatedAt = time.Now()
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeTalkRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var n int64
	for _, t := range r.db.talks {
		if talkMatches(t, specs) {
			n++
		}
	}
	return n, nil
}

func talkMatches(t *entity.Talk, specs []specification.Specification) bool {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.ByID:
			if t.Id != sp.ID {
				return false
			}
		case specification.OwnedBy:
			if t.UserId != sp.UserID {
				return false
			}
		case specification.NotDeleted:
			if t.IsDeleted {
				return false
			}
		}
	}
	return true
}

// --- messages ---

type fakeMessageRepository struct {
	db *memDB
}

func (r *fakeMessageRepository) Create(ctx context.Context, message *entity.Message) error {
	r.db.messages = append(r.db.messages, message)
	return nil
}

func (r *fakeMessageRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error) {
	var result []*entity.Message
	for _, m := range r.db.messages {
		if messageMatches(m, specs) {
			copied := *m
			result = append(result, &copied)
		}
	}
	for _, s := range specs {
		if ob, ok := s.(specification.OrderBy); ok && ob.Field == "created_at" {
			sort.SliceStable(result, func(i, j int) bool {
				if ob.Desc {
					return result[i].CreatedAt.After(result[j].CreatedAt)
				}
				return result[i].CreatedAt.Before(result[j].CreatedAt)
			})
		}
	}
	return result, nil
}

func (r *fakeMessageRepository) SoftDeleteByTalk(ctx context.Context, talkId uuid.UUID) (bool, error) {
	affected := false
	for _, m := range r.db.messages {
		if m.TalkId == talkId && !m.IsDeleted {
			m.IsDeleted = true
			m.UpdatedAt = time.Now()
			affected = true
		}
	}
	return affected, nil
}

func (r *fakeMessageRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var n int64
	for _, m := range r.db.messages {
		if messageMatches(m, specs) {
			n++
		}
	}
	return n, nil
}

func messageMatches(m *entity.Message, specs []specification.Specification) bool {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.ByID:
			if m.Id != sp.ID {
				return false
			}
		case specification.ByTalkID:
			if m.TalkId != sp.TalkID {
				return false
			}
		case specification.OwnedBy:
			if m.UserId != sp.UserID {
				return false
			}
		case specification.NotDeleted:
			if m.IsDeleted {
				return false
			}
		}
	}
	return true
}

// --- gateway ---

type fakeGateway struct {
	result  n8n.Result
	healthy bool
	inputs  []string
}

func (g *fakeGateway) SendChatInput(ctx context.Context, chatInput string) n8n.Result {
	g.inputs = append(g.inputs, chatInput)
	return g.result
}

func (g *fakeGateway) CheckHealth() bool { return g.healthy }

// --- logger ---

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
