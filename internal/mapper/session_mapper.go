package mapper

import (
	"encoding/json"
	"time"

	"ventures-chat-be/internal/entity"
	"ventures-chat-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SessionMapper struct{}

func NewSessionMapper() *SessionMapper {
	return &SessionMapper{}
}

// Session Mappers

func (m *SessionMapper) UserSessionToEntity(s *model.UserSession) *entity.UserSession {
	if s == nil {
		return nil
	}

	var deletedAt *time.Time
	if s.DeletedAt.Valid {
		t := s.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	return &entity.UserSession{
		Id:                s.Id,
		SessionId:         s.SessionId,
		Phase:             s.Phase,
		CompletionRate:    s.CompletionRate,
		UserName:          s.UserName,
		UserEmail:         s.UserEmail,
		UserRole:          s.UserRole,
		SchoolAffiliation: s.SchoolAffiliation,
		VentureStage:      s.VentureStage,
		PrimaryNeed:       s.PrimaryNeed,
		UrgencyLevel:      s.UrgencyLevel,
		Department:        s.Department,
		StartupStage:      s.StartupStage,
		LastActivity:      s.LastActivity,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         updatedAt,
		DeletedAt:         deletedAt,
		IsDeleted:         s.DeletedAt.Valid,
	}
}

func (m *SessionMapper) UserSessionToModel(s *entity.UserSession) *model.UserSession {
	if s == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if s.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *s.DeletedAt, Valid: true}
	} else if s.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.UserSession{
		Id:                s.Id,
		SessionId:         s.SessionId,
		Phase:             s.Phase,
		CompletionRate:    s.CompletionRate,
		UserName:          s.UserName,
		UserEmail:         s.UserEmail,
		UserRole:          s.UserRole,
		SchoolAffiliation: s.SchoolAffiliation,
		VentureStage:      s.VentureStage,
		PrimaryNeed:       s.PrimaryNeed,
		UrgencyLevel:      s.UrgencyLevel,
		Department:        s.Department,
		StartupStage:      s.StartupStage,
		LastActivity:      s.LastActivity,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         updatedAt,
		DeletedAt:         deletedAt,
	}
}

// Message Mappers

func (m *SessionMapper) SessionMessageToEntity(msg *model.SessionMessage) *entity.SessionMessage {
	if msg == nil {
		return nil
	}

	var deletedAt *time.Time
	if msg.DeletedAt.Valid {
		t := msg.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !msg.UpdatedAt.IsZero() {
		t := msg.UpdatedAt
		updatedAt = &t
	}

	return &entity.SessionMessage{
		Id:            msg.Id,
		SessionId:     msg.SessionId,
		Role:          msg.Role,
		Content:       msg.Content,
		CitationCount: msg.CitationCount,
		CreatedAt:     msg.CreatedAt,
		UpdatedAt:     updatedAt,
		DeletedAt:     deletedAt,
		IsDeleted:     msg.DeletedAt.Valid,
	}
}

func (m *SessionMapper) SessionMessageToModel(msg *entity.SessionMessage) *model.SessionMessage {
	if msg == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if msg.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *msg.DeletedAt, Valid: true}
	} else if msg.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if msg.UpdatedAt != nil {
		updatedAt = *msg.UpdatedAt
	}

	return &model.SessionMessage{
		Id:            msg.Id,
		SessionId:     msg.SessionId,
		Role:          msg.Role,
		Content:       msg.Content,
		CitationCount: msg.CitationCount,
		CreatedAt:     msg.CreatedAt,
		UpdatedAt:     updatedAt,
		DeletedAt:     deletedAt,
	}
}

// Citation Mappers

func (m *SessionMapper) MessageCitationToEntity(c *model.MessageCitation) *entity.MessageCitation {
	if c == nil {
		return nil
	}

	var metadata map[string]interface{}
	if len(c.Metadata) > 0 {
		_ = json.Unmarshal(c.Metadata, &metadata)
	}

	return &entity.MessageCitation{
		Id:             c.Id,
		MessageId:      c.MessageId,
		Rank:           c.Rank,
		Document:       c.Document,
		RelevanceScore: c.RelevanceScore,
		Content:        c.Content,
		Metadata:       metadata,
		CreatedAt:      c.CreatedAt,
	}
}

func (m *SessionMapper) MessageCitationToModel(c *entity.MessageCitation) *model.MessageCitation {
	if c == nil {
		return nil
	}

	var metadata datatypes.JSON
	if c.Metadata != nil {
		if raw, err := json.Marshal(c.Metadata); err == nil {
			metadata = raw
		}
	}

	return &model.MessageCitation{
		Id:             c.Id,
		MessageId:      c.MessageId,
		Rank:           c.Rank,
		Document:       c.Document,
		RelevanceScore: c.RelevanceScore,
		Content:        c.Content,
		Metadata:       metadata,
		CreatedAt:      c.CreatedAt,
	}
}

// Feedback Mappers

func (m *SessionMapper) FeedbackToEntity(f *model.Feedback) *entity.Feedback {
	if f == nil {
		return nil
	}
	return &entity.Feedback{
		Id:        f.Id,
		SessionId: f.SessionId,
		Rating:    f.Rating,
		Category:  f.Category,
		Comment:   f.Comment,
		CreatedAt: f.CreatedAt,
	}
}

func (m *SessionMapper) FeedbackToModel(f *entity.Feedback) *model.Feedback {
	if f == nil {
		return nil
	}
	return &model.Feedback{
		Id:        f.Id,
		SessionId: f.SessionId,
		Rating:    f.Rating,
		Category:  f.Category,
		Comment:   f.Comment,
		CreatedAt: f.CreatedAt,
	}
}

// Extracted Data Mappers

func (m *SessionMapper) ExtractedDataToEntity(d *model.ExtractedData) *entity.ExtractedData {
	if d == nil {
		return nil
	}

	var metadata map[string]interface{}
	if len(d.Metadata) > 0 {
		_ = json.Unmarshal(d.Metadata, &metadata)
	}

	return &entity.ExtractedData{
		Id:          d.Id,
		SessionId:   d.SessionId,
		DataType:    d.DataType,
		Source:      d.Source,
		Content:     d.Content,
		Metadata:    metadata,
		ExtractedAt: d.ExtractedAt,
	}
}

func (m *SessionMapper) ExtractedDataToModel(d *entity.ExtractedData) *model.ExtractedData {
	if d == nil {
		return nil
	}

	var metadata datatypes.JSON
	if d.Metadata != nil {
		if raw, err := json.Marshal(d.Metadata); err == nil {
			metadata = raw
		}
	}

	return &model.ExtractedData{
		Id:          d.Id,
		SessionId:   d.SessionId,
		DataType:    d.DataType,
		Source:      d.Source,
		Content:     d.Content,
		Metadata:    metadata,
		ExtractedAt: d.ExtractedAt,
	}
}
