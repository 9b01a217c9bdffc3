package implementation

import (
	"context"
	"errors"

	"ventures-chat-be/internal/entity"
	"ventures-chat-be/internal/mapper"
	"ventures-chat-be/internal/model"
	"ventures-chat-be/internal/repository/contract"
	"ventures-chat-be/internal/repository/specification"

	"gorm.io/gorm"
)

type SessionMessageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SessionMapper
}

func NewSessionMessageRepository(db *gorm.DB) contract.SessionMessageRepository {
	return &SessionMessageRepositoryImpl{
		db:     db,
		mapper: mapper.NewSessionMapper(),
	}
}

func (r *SessionMessageRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SessionMessageRepositoryImpl) Create(ctx context.Context, message *entity.SessionMessage) error {
	m := r.mapper.SessionMessageToModel(message)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*message = *r.mapper.SessionMessageToEntity(m)
	return nil
}

func (r *SessionMessageRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SessionMessage, error) {
	var m model.SessionMessage
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SessionMessageToEntity(&m), nil
}

func (r *SessionMessageRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SessionMessage, error) {
	var models []*model.SessionMessage
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.SessionMessage, len(models))
	for i, m := range models {
		entities[i] = r.mapper.SessionMessageToEntity(m)
	}
	return entities, nil
}

func (r *SessionMessageRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.SessionMessage{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *SessionMessageRepositoryImpl) DeleteBySessionID(ctx context.Context, sessionID string) error {
	return r.db.WithContext(ctx).Where("session_id = ?", sessionID).Delete(&model.SessionMessage{}).Error
}
