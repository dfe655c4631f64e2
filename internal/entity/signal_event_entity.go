package entity

import (
	"time"

	"github.com/google/uuid"
)

type SignalEvent struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey"`
	SessionId        string
	Vector           string
	Value            string
	Strength         string
	ConfidenceBefore float64
	ConfidenceAfter  float64
	Evidence         string
	Source           string
	CreatedAt        time.Time
}
