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

type UserSessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SessionMapper
}

func NewUserSessionRepository(db *gorm.DB) contract.UserSessionRepository {
	return &UserSessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewSessionMapper(),
	}
}

func (r *UserSessionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *UserSessionRepositoryImpl) Create(ctx context.Context, session *entity.UserSession) error {
	m := r.mapper.UserSessionToModel(session)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.UserSessionToEntity(m)
	return nil
}

func (r *UserSessionRepositoryImpl) Update(ctx context.Context, session *entity.UserSession) error {
	m := r.mapper.UserSessionToModel(session)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.UserSessionToEntity(m)
	return nil
}

func (r *UserSessionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserSession, error) {
	var m model.UserSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.UserSessionToEntity(&m), nil
}

func (r *UserSessionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserSession, error) {
	var models []*model.UserSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.UserSession, len(models))
	for i, m := range models {
		entities[i] = r.mapper.UserSessionToEntity(m)
	}
	return entities, nil
}

func (r *UserSessionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.UserSession{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
