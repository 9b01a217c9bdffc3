package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MessageCitation is the durable record of one raw citation after
// normalization, linked to the assistant message it supports.
type MessageCitation struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MessageId      uuid.UUID      `gorm:"type:uuid;not null;index"`
	Rank           int            `gorm:"not null"`
	Document       string         `gorm:"type:text;not null"`
	RelevanceScore float64        `gorm:"not null"`
	Content        string         `gorm:"type:text"`
	Metadata       datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`

	Message SessionMessage `gorm:"foreignKey:MessageId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (MessageCitation) TableName() string {
	return "message_citations"
}
