package model

import (
	"time"

	"github.com/google/uuid"
)

// SignalEvent is an append-only audit row, written by the analytics consumer.
type SignalEvent struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId        string    `gorm:"type:varchar(64);not null;index"`
	Vector           string    `gorm:"type:varchar(50);not null"`
	Value            string    `gorm:"type:varchar(100);not null"`
	Strength         string    `gorm:"type:varchar(20);not null"`
	ConfidenceBefore float64   `gorm:"type:double precision;not null"`
	ConfidenceAfter  float64   `gorm:"type:double precision;not null"`
	Evidence         string    `gorm:"type:text"`
	Source           string    `gorm:"type:varchar(20);not null"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
}

func (SignalEvent) TableName() string {
	return "signal_events"
}
