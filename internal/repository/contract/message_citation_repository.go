package contract

import (
	"context"

	"ventures-chat-be/internal/entity"

	"github.com/google/uuid"
)

type MessageCitationRepository interface {
	CreateBulk(ctx context.Context, citations []*entity.MessageCitation) error
	FindAllByMessageIDs(ctx context.Context, messageIDs []uuid.UUID) ([]*entity.MessageCitation, error)
	DeleteBySessionID(ctx context.Context, sessionID string) error
}
