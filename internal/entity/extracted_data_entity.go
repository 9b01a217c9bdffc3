package entity

import (
	"time"

	"github.com/google/uuid"
)

type ExtractedData struct {
	Id          uuid.UUID
	SessionId   string
	DataType    string
	Source      string
	Content     string
	Metadata    map[string]interface{}
	ExtractedAt time.Time
}
