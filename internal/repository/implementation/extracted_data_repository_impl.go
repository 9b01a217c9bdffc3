package implementation

import (
	"context"

	"ventures-chat-be/internal/entity"
	"ventures-chat-be/internal/mapper"
	"ventures-chat-be/internal/model"
	"ventures-chat-be/internal/repository/contract"
	"ventures-chat-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ExtractedDataRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SessionMapper
}

func NewExtractedDataRepository(db *gorm.DB) contract.ExtractedDataRepository {
	return &ExtractedDataRepositoryImpl{
		db:     db,
		mapper: mapper.NewSessionMapper(),
	}
}

func (r *ExtractedDataRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ExtractedDataRepositoryImpl) Create(ctx context.Context, data *entity.ExtractedData) error {
	m := r.mapper.ExtractedDataToModel(data)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*data = *r.mapper.ExtractedDataToEntity(m)
	return nil
}

func (r *ExtractedDataRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ExtractedData, error) {
	var models []*model.ExtractedData
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ExtractedData, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ExtractedDataToEntity(m)
	}
	return entities, nil
}
