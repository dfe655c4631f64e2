package specification

import (
	"time"

	"gorm.io/gorm"
)

// BySessionID filters rows belonging to one widget session.
type BySessionID struct {
	SessionID string
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}

// ByRole filters conversation messages by speaker role.
type ByRole struct {
	Role string
}

func (s ByRole) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("role = ?", s.Role)
}

// ByVector filters signal events by detection vector.
type ByVector struct {
	Vector string
}

func (s ByVector) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("vector = ?", s.Vector)
}

// CreatedAfter filters rows newer than the given instant.
type CreatedAfter struct {
	Time time.Time
}

func (s CreatedAfter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("created_at > ?", s.Time)
}

// BySourceType filters knowledge chunks by their ingestion source.
type BySourceType struct {
	SourceType string
}

func (s BySourceType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("source_type = ?", s.SourceType)
}
