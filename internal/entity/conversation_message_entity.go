package entity

import (
	"time"

	"bevgenie-be/pkg/persona"

	"github.com/google/uuid"
)

type ConversationMessage struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	SessionId string
	Role      string
	Content   string

	Intent   string
	Score    float64
	PageType string

	// Nil on model turns and on rows written before accumulation existed.
	PersonaSnapshot *persona.ScoreVector

	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}
