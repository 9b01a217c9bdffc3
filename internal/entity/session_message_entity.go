package entity

import (
	"time"

	"github.com/google/uuid"
)

type SessionMessage struct {
	Id            uuid.UUID
	SessionId     string
	Role          string
	Content       string
	CitationCount int
	CreatedAt     time.Time
	UpdatedAt     *time.Time
	DeletedAt     *time.Time
	IsDeleted     bool
}
