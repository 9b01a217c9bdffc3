package implementation

import (
	"context"

	"ventures-chat-be/internal/entity"
	"ventures-chat-be/internal/mapper"
	"ventures-chat-be/internal/model"
	"ventures-chat-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MessageCitationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SessionMapper
}

func NewMessageCitationRepository(db *gorm.DB) contract.MessageCitationRepository {
	return &MessageCitationRepositoryImpl{
		db:     db,
		mapper: mapper.NewSessionMapper(),
	}
}

func (r *MessageCitationRepositoryImpl) CreateBulk(ctx context.Context, citations []*entity.MessageCitation) error {
	if len(citations) == 0 {
		return nil
	}
	models := make([]*model.MessageCitation, len(citations))
	for i, c := range citations {
		models[i] = r.mapper.MessageCitationToModel(c)
	}
	return r.db.WithContext(ctx).Create(&models).Error
}

func (r *MessageCitationRepositoryImpl) FindAllByMessageIDs(ctx context.Context, messageIDs []uuid.UUID) ([]*entity.MessageCitation, error) {
	if len(messageIDs) == 0 {
		return []*entity.MessageCitation{}, nil
	}
	var models []*model.MessageCitation
	err := r.db.WithContext(ctx).
		Where("message_id IN ?", messageIDs).
		Order("rank ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	entities := make([]*entity.MessageCitation, len(models))
	for i, m := range models {
		entities[i] = r.mapper.MessageCitationToEntity(m)
	}
	return entities, nil
}

func (r *MessageCitationRepositoryImpl) DeleteBySessionID(ctx context.Context, sessionID string) error {
	// Subquery delete strategy
	return r.db.WithContext(ctx).
		Where("message_id IN (?)", r.db.Table("session_messages").Select("id").Where("session_id = ?", sessionID)).
		Delete(&model.MessageCitation{}).Error
}
