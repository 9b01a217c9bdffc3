package model

import (
	"time"

	"github.com/google/uuid"
)

// Feedback may carry a null SessionId: a submission must succeed even when
// the local session backfill fails.
type Feedback struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId *string   `gorm:"type:varchar(64);index"`
	Rating    int       `gorm:"not null"`
	Category  string    `gorm:"type:varchar(64)"`
	Comment   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Feedback) TableName() string {
	return "feedback"
}
