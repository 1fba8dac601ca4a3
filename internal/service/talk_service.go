// FILE: internal/service/talk_service.go
package service

import (
	"context"
	"time"

	"chatai-be/internal/dto"
	"chatai-be/internal/entity"
	"chatai-be/internal/pkg/logger"
	"chatai-be/internal/repository/specification"
	"chatai-be/internal/repository/unitofwork"
	"chatai-be/pkg/n8n"

	"github.com/google/uuid"
)

type ITalkService interface {
	GetTalksByUser(ctx context.Context, userId uuid.UUID) ([]dto.TalkDTO, error)
	StartTalk(ctx context.Context, userId uuid.UUID, req *dto.StartTalkRequest) (*dto.StartTalkResponse, error)
	UpdateTalk(ctx context.Context, userId uuid.UUID, req *dto.UpdateTalkRequest) (*dto.UpdateTalkResponse, error)
	DeleteTalk(ctx context.Context, userId, talkId uuid.UUID) error
}

type talkService struct {
	uowFactory unitofwork.RepositoryFactory
	gateway    n8n.Gateway
	log        logger.ILogger
}

func NewTalkService(uowFactory unitofwork.RepositoryFactory, gateway n8n.Gateway, log logger.ILogger) ITalkService {
	return &talkService{
		uowFactory: uowFactory,
		gateway:    gateway,
		log:        log,
	}
}

func (s *talkService) GetTalksByUser(ctx context.Context, userId uuid.UUID) ([]dto.TalkDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	talks, err := uow.TalkRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.NotDeleted{},
	)
	if err != nil {
		return nil, err
	}

	result := make([]dto.TalkDTO, len(talks))
	for i, t := range talks {
		result[i] = dto.TalkDTO{
			Id:        t.Id,
			Name:      t.Name,
			CreatedAt: t.CreatedAt,
			UpdatedAt: t.UpdatedAt,
		}
	}
	return result, nil
}

// StartTalk creates the conversation, stores the user's first message, asks
// the workflow engine for a reply and stores that too. The user/bot pair is
// two separate writes: a crash or gateway hang in between leaves a talk with
// a user message and no reply, which is tolerated.
func (s *talkService) StartTalk(ctx context.Context, userId uuid.UUID, req *dto.StartTalkRequest) (*dto.StartTalkResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	now := time.Now()
	talk := &entity.Talk{
		Id:        uuid.New(),
		Name:      truncateTalkName(req.Message),
		UserId:    userId,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uow.TalkRepository().Create(ctx, talk); err != nil {
		return nil, err
	}

	messages, status, err := runExchange(ctx, uow, s.gateway, s.log, talk.Id, userId, req.Message)
	if err != nil {
		return nil, err
	}

	return &dto.StartTalkResponse{
		Talk: dto.StartTalkResponseTalk{
			TalkId:    talk.Id,
			Name:      talk.Name,
			CreatedAt: talk.CreatedAt,
		},
		Messages:  messages,
		N8nStatus: status,
	}, nil
}

func (s *talkService) UpdateTalk(ctx context.Context, userId uuid.UUID, req *dto.UpdateTalkRequest) (*dto.UpdateTalkResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	talk, err := uow.TalkRepository().UpdateNameScoped(ctx, req.TalkId, userId, req.Name)
	if err != nil {
		return nil, err
	}
	if talk == nil {
		return nil, ErrTalkNotFound
	}

	return &dto.UpdateTalkResponse{
		Message: "Talk updated successfully",
		Talk: dto.TalkDTO{
			Id:        talk.Id,
			Name:      talk.Name,
			CreatedAt: talk.CreatedAt,
			UpdatedAt: talk.UpdatedAt,
		},
	}, nil
}

// DeleteTalk tombstones the talk under the ownership guard, then cascades to
// its messages. The cascade is unscoped by user: ownership was just validated
// by the guarded delete, with no other writer able to reassign a talk.
func (s *talkService) DeleteTalk(ctx context.Context, userId, talkId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	deleted, err := uow.TalkRepository().SoftDeleteScoped(ctx, talkId, userId)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTalkNotFound
	}

	if _, err := uow.MessageRepository().SoftDeleteByTalk(ctx, talkId); err != nil {
		// The talk tombstone is already in place; listing paths filter
		// messages on their own is_deleted, so orphans stay invisible.
		s.log.Error("talk", "cascade delete of messages failed", map[string]interface{}{
			"talk_id": talkId.String(),
			"error":   err.Error(),
		})
		return err
	}

	return nil
}

// runExchange runs the shared send-message steps: persist the user message,
// call the gateway, persist the bot reply, then re-read the whole thread.
func runExchange(ctx context.Context, uow unitofwork.UnitOfWork, gateway n8n.Gateway, log logger.ILogger, talkId, userId uuid.UUID, content string) ([]dto.MessageDTO, string, error) {
	messages := uow.MessageRepository()

	now := time.Now()
	userMsg := &entity.Message{
		Id:        uuid.New(),
		Type:      entity.MessageTypeUser,
		Content:   content,
		TalkId:    talkId,
		UserId:    userId,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := messages.Create(ctx, userMsg); err != nil {
		return nil, "", err
	}

	res := gateway.SendChatInput(ctx, content)
	botContent, status := deriveBotReply(res)
	if status == N8nStatusError {
		log.Warn("talk", "gateway reply degraded to error message", map[string]interface{}{
			"talk_id": talkId.String(),
		})
	}

	now = time.Now()
	botMsg := &entity.Message{
		Id:        uuid.New(),
		Type:      entity.MessageTypeBot,
		Content:   botContent,
		TalkId:    talkId,
		UserId:    userId,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := messages.Create(ctx, botMsg); err != nil {
		return nil, "", err
	}

	all, err := messages.FindAll(ctx,
		specification.ByTalkID{TalkID: talkId},
		specification.OwnedBy{UserID: userId},
		specification.NotDeleted{},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, "", err
	}

	result := make([]dto.MessageDTO, len(all))
	for i, m := range all {
		result[i] = dto.MessageDTO{
			Id:        m.Id,
			Type:      string(m.Type),
			Content:   m.Content,
			TalkId:    m.TalkId,
			UserId:    m.UserId,
			CreatedAt: m.CreatedAt,
		}
	}
	return result, status, nil
}
