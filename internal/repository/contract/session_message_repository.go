package contract

import (
	"context"

	"ventures-chat-be/internal/entity"
	"ventures-chat-be/internal/repository/specification"
)

type SessionMessageRepository interface {
	Create(ctx context.Context, message *entity.SessionMessage) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SessionMessage, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SessionMessage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	DeleteBySessionID(ctx context.Context, sessionID string) error
}
