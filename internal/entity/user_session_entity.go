package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserSession struct {
	Id                uuid.UUID
	SessionId         string
	Phase             string
	CompletionRate    float64
	UserName          *string
	UserEmail         *string
	UserRole          *string
	SchoolAffiliation *string
	VentureStage      *string
	PrimaryNeed       *string
	UrgencyLevel      *string
	Department        *string
	StartupStage      *string
	LastActivity      time.Time
	CreatedAt         time.Time
	UpdatedAt         *time.Time
	DeletedAt         *time.Time
	IsDeleted         bool
}
