package unitofwork

import (
	"context"

	"ventures-chat-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserSessionRepository() contract.UserSessionRepository
	SessionMessageRepository() contract.SessionMessageRepository
	MessageCitationRepository() contract.MessageCitationRepository
	FeedbackRepository() contract.FeedbackRepository
	ExtractedDataRepository() contract.ExtractedDataRepository
}
