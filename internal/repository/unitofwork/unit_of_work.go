package unitofwork

import (
	"context"

	"chatai-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	TalkRepository() contract.TalkRepository
	MessageRepository() contract.MessageRepository
}
