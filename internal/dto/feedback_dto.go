package dto

import (
	"time"

	"github.com/google/uuid"
)

type SubmitFeedbackRequest struct {
	SessionId string `json:"session_id,omitempty" validate:"omitempty,max=64"`
	Rating    int    `json:"rating" validate:"required,gte=1,lte=5"`
	Category  string `json:"category" validate:"required,max=64"`
	Comment   string `json:"comment,omitempty"`
}

type SubmitFeedbackResponse struct {
	Id        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}
