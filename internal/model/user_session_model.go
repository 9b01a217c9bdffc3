package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserSession is the locally-owned session aggregate. SessionId is the
// external identifier shared with the AI backend; profile fields are
// nullable because they fill in progressively as the backend extracts them.
type UserSession struct {
	Id                uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId         string         `gorm:"type:varchar(64);uniqueIndex;not null"`
	Phase             string         `gorm:"type:varchar(64);not null"`
	CompletionRate    float64        `gorm:"not null;default:0"`
	UserName          *string        `gorm:"type:text"`
	UserEmail         *string        `gorm:"type:text"`
	UserRole          *string        `gorm:"type:varchar(64)"`
	SchoolAffiliation *string        `gorm:"type:varchar(64)"`
	VentureStage      *string        `gorm:"type:varchar(64)"`
	PrimaryNeed       *string        `gorm:"type:text"`
	UrgencyLevel      *string        `gorm:"type:varchar(32)"`
	Department        *string        `gorm:"type:text"`
	StartupStage      *string        `gorm:"type:varchar(64)"`
	LastActivity      time.Time      `gorm:"autoUpdateTime"`
	CreatedAt         time.Time      `gorm:"autoCreateTime"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime"`
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

func (UserSession) TableName() string {
	return "user_sessions"
}
