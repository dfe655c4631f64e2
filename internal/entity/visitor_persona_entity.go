package entity

import (
	"time"

	"bevgenie-be/pkg/persona"

	"github.com/google/uuid"
)

type VisitorPersona struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	SessionId string
	Score     *persona.ScoreVector
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}
