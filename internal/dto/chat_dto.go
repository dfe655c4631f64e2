package dto

import (
	"time"

	"bevgenie-be/pkg/pagegen"
)

// ClickContextDTO describes the widget element the visitor interacted with
// before sending, if any.
type ClickContextDTO struct {
	Label   string `json:"label,omitempty" validate:"max=200"`
	Section string `json:"section,omitempty" validate:"max=100"`
}

type SendChatRequest struct {
	Message      string           `json:"message" validate:"required,max=5000"`
	ClickContext *ClickContextDTO `json:"click_context,omitempty"`
}

// SignalDTO is the per-turn extraction outcome echoed to the widget.
type SignalDTO struct {
	Vector     string  `json:"vector"`
	Value      string  `json:"value"`
	Strength   string  `json:"strength"`
	Confidence float64 `json:"confidence"`
	Source     string  `json:"source"`
}

// PersonaSummaryDTO is the trimmed persona view echoed to the widget.
type PersonaSummaryDTO struct {
	FunctionalRole    string   `json:"functional_role,omitempty"`
	OrgType           string   `json:"org_type,omitempty"`
	OrgSize           string   `json:"org_size,omitempty"`
	ProductFocus      string   `json:"product_focus,omitempty"`
	PainPoints        []string `json:"pain_points,omitempty"`
	OverallConfidence float64  `json:"overall_confidence"`
	TotalInteractions int      `json:"total_interactions"`
}

type SendChatResponse struct {
	SessionId    string `json:"session_id"`
	MessageCount int    `json:"message_count"`
	Reply        string `json:"reply"`

	Intent     string  `json:"intent"`
	Score      float64 `json:"score"`
	Confidence float64 `json:"confidence"`

	ShouldShowPage bool                   `json:"should_show_page"`
	Page           *pagegen.GeneratedPage `json:"page,omitempty"`
	PageType       string                 `json:"page_type,omitempty"`
	GenerationMode string                 `json:"generation_mode,omitempty"`

	Signals []SignalDTO        `json:"signals,omitempty"`
	Persona *PersonaSummaryDTO `json:"persona,omitempty"`
}

type ChatHistoryMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Intent    string    `json:"intent,omitempty"`
	PageType  string    `json:"page_type,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type GetChatHistoryResponse struct {
	SessionId    string               `json:"session_id"`
	MessageCount int                  `json:"message_count"`
	Messages     []ChatHistoryMessage `json:"messages"`
	Persona      *PersonaSummaryDTO   `json:"persona,omitempty"`
}

// SignalEventMessage is the payload published to the analytics topic for
// every extracted signal.
type SignalEventMessage struct {
	SessionId        string    `json:"session_id"`
	Vector           string    `json:"vector"`
	Value            string    `json:"value"`
	Strength         string    `json:"strength"`
	ConfidenceBefore float64   `json:"confidence_before"`
	ConfidenceAfter  float64   `json:"confidence_after"`
	Evidence         string    `json:"evidence,omitempty"`
	Source           string    `json:"source"`
	OccurredAt       time.Time `json:"occurred_at"`
}
