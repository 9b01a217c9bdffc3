package entity

import (
	"time"

	"github.com/google/uuid"
)

type MessageCitation struct {
	Id             uuid.UUID
	MessageId      uuid.UUID
	Rank           int
	Document       string
	RelevanceScore float64
	Content        string
	Metadata       map[string]interface{}
	CreatedAt      time.Time
}
