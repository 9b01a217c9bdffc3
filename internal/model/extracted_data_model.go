package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ExtractedData struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId   string         `gorm:"type:varchar(64);not null;index"`
	DataType    string         `gorm:"type:varchar(64);not null"`
	Source      string         `gorm:"type:varchar(64)"`
	Content     string         `gorm:"type:text"`
	Metadata    datatypes.JSON `gorm:"type:jsonb"`
	ExtractedAt time.Time      `gorm:"autoCreateTime"`
}

func (ExtractedData) TableName() string {
	return "extracted_data"
}
