package contract

import (
	"context"

	"ventures-chat-be/internal/entity"
	"ventures-chat-be/internal/repository/specification"
)

type UserSessionRepository interface {
	Create(ctx context.Context, session *entity.UserSession) error
	Update(ctx context.Context, session *entity.UserSession) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserSession, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserSession, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
