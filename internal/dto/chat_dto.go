package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendChatRequest struct {
	SessionId string `json:"session_id" validate:"required,max=64"`
	Message   string `json:"message" validate:"required"`
}

type SendChatResponse struct {
	SessionId string             `json:"session_id"`
	MessageId uuid.UUID          `json:"message_id"`
	Response  string             `json:"response"`
	Citations []CitationGroupDTO `json:"citations,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
}

// CitationGroupDTO is one consolidated source: a representative citation
// plus the ranks of every raw citation folded into it.
type CitationGroupDTO struct {
	Rank           int                    `json:"rank"`
	Document       string                 `json:"document"`
	RelevanceScore float64                `json:"relevance_score"`
	Content        string                 `json:"content"`
	OriginalRanks  []int                  `json:"original_ranks"`
	MemberCount    int                    `json:"member_count"`
	Metadata       map[string]interface{} `json:"metadata,omitempty"`
}

type GetMessageCitationsResponse struct {
	MessageId uuid.UUID          `json:"message_id"`
	Citations []CitationGroupDTO `json:"citations"`
}

type GetChatHistoryResponse struct {
	Id            uuid.UUID `json:"id"`
	Role          string    `json:"role"`
	Content       string    `json:"content"`
	CitationCount int       `json:"citation_count"`
	CreatedAt     time.Time `json:"created_at"`
}
