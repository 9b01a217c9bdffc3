package service

import (
	"context"

	"ventures-chat-be/internal/repository/specification"
	"ventures-chat-be/internal/repository/unitofwork"
	"ventures-chat-be/pkg/correlation"
)

// messageSource exposes persisted chat messages to the correlation linker.
// The linker polls from its own goroutines, so lookups run on a background
// context rather than a request-scoped one.
type messageSource struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewMessageSource(uowFactory unitofwork.RepositoryFactory) correlation.MessageSource {
	return &messageSource{uowFactory: uowFactory}
}

func (m *messageSource) Messages(sessionID string) []correlation.Message {
	ctx := context.Background()
	uow := m.uowFactory.NewUnitOfWork(ctx)

	rows, err := uow.SessionMessageRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionID},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil
	}

	messages := make([]correlation.Message, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, correlation.Message{
			ID:      row.Id.String(),
			Role:    row.Role,
			Content: row.Content,
		})
	}
	return messages
}
