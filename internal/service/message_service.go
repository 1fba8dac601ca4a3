// FILE: internal/service/message_service.go
package service

import (
	"context"

	"chatai-be/internal/dto"
	"chatai-be/internal/pkg/logger"
	"chatai-be/internal/repository/specification"
	"chatai-be/internal/repository/unitofwork"
	"chatai-be/pkg/n8n"

	"github.com/google/uuid"
)

type IMessageService interface {
	GetMessagesByTalk(ctx context.Context, userId, talkId uuid.UUID) ([]dto.MessageDTO, error)
	SendMessage(ctx context.Context, userId uuid.UUID, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
}

type messageService struct {
	uowFactory unitofwork.RepositoryFactory
	gateway    n8n.Gateway
	log        logger.ILogger
}

func NewMessageService(uowFactory unitofwork.RepositoryFactory, gateway n8n.Gateway, log logger.ILogger) IMessageService {
	return &messageService{
		uowFactory: uowFactory,
		gateway:    gateway,
		log:        log,
	}
}

func (s *messageService) GetMessagesByTalk(ctx context.Context, userId, talkId uuid.UUID) ([]dto.MessageDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	all, err := uow.MessageRepository().FindAll(ctx,
		specification.ByTalkID{TalkID: talkId},
		specification.OwnedBy{UserID: userId},
		specification.NotDeleted{},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
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
	return result, nil
}

// SendMessage appends a user/bot message pair to an existing talk. Ownership
// of the talk is re-validated before any write, so a guessed talk_id cannot
// be written into. Repeated identical calls append fresh pairs; there is no
// deduplication.
func (s *messageService) SendMessage(ctx context.Context, userId uuid.UUID, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	talk, err := uow.TalkRepository().FindOne(ctx,
		specification.ByID{ID: req.TalkId},
		specification.OwnedBy{UserID: userId},
		specification.NotDeleted{},
	)
	if err != nil {
		return nil, err
	}
	if talk == nil {
		return nil, ErrTalkNotFound
	}

	messages, status, err := runExchange(ctx, uow, s.gateway, s.log, req.TalkId, userId, req.Content)
	if err != nil {
		return nil, err
	}

	return &dto.SendMessageResponse{
		Messages:  messages,
		N8nStatus: status,
	}, nil
}
