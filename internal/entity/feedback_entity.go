package entity

import (
	"time"

	"github.com/google/uuid"
)

type Feedback struct {
	Id        uuid.UUID
	SessionId *string
	Rating    int
	Category  string
	Comment   string
	CreatedAt time.Time
}
