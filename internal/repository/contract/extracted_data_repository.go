package contract

import (
	"context"

	"ventures-chat-be/internal/entity"
	"ventures-chat-be/internal/repository/specification"
)

type ExtractedDataRepository interface {
	Create(ctx context.Context, data *entity.ExtractedData) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ExtractedData, error)
}
