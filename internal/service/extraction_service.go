package service

import (
	"context"
	"encoding/json"

	"ventures-chat-be/internal/dto"
	"ventures-chat-be/internal/pkg/logger"
	"ventures-chat-be/internal/repository/specification"
	"ventures-chat-be/internal/repository/unitofwork"
)

type IExtractionService interface {
	Store(ctx context.Context, request *dto.StoreExtractedDataRequest) error
	List(ctx context.Context, sessionID, dataType string) ([]*dto.ExtractedDataResponse, error)
}

// extractionService accepts extraction payloads and hands them to the
// in-process pipeline. Persistence happens in the consumer so HTTP intake
// stays fast even when the database is slow.
type extractionService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IPublisherService
	logger     logger.ILogger
}

func NewExtractionService(
	uowFactory unitofwork.RepositoryFactory,
	publisher IPublisherService,
	sysLogger logger.ILogger,
) IExtractionService {
	return &extractionService{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     sysLogger,
	}
}

func (es *extractionService) Store(ctx context.Context, request *dto.StoreExtractedDataRequest) error {
	payload, err := json.Marshal(request)
	if err != nil {
		return err
	}
	return es.publisher.Publish(ctx, payload)
}

func (es *extractionService) List(ctx context.Context, sessionID, dataType string) ([]*dto.ExtractedDataResponse, error) {
	uow := es.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.BySessionID{SessionID: sessionID},
		specification.OrderBy{Field: "extracted_at", Desc: true},
	}
	if dataType != "" {
		specs = append(specs, specification.ByDataType{DataType: dataType})
	}

	rows, err := uow.ExtractedDataRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ExtractedDataResponse, len(rows))
	for i, row := range rows {
		out[i] = &dto.ExtractedDataResponse{
			Id:          row.Id,
			SessionId:   row.SessionId,
			DataType:    row.DataType,
			Source:      row.Source,
			Content:     row.Content,
			Metadata:    row.Metadata,
			ExtractedAt: row.ExtractedAt,
		}
	}
	return out, nil
}
