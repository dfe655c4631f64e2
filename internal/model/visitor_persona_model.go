package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type VisitorPersona struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId string    `gorm:"type:varchar(64);not null;uniqueIndex"`

	FunctionalRole     string  `gorm:"type:varchar(50)"`
	FunctionalRoleConf float64 `gorm:"type:double precision;not null;default:0"`
	OrgType            string  `gorm:"type:varchar(50)"`
	OrgTypeConf        float64 `gorm:"type:double precision;not null;default:0"`
	OrgSize            string  `gorm:"type:varchar(10)"`
	OrgSizeConf        float64 `gorm:"type:double precision;not null;default:0"`
	ProductFocus       string  `gorm:"type:varchar(50)"`
	ProductFocusConf   float64 `gorm:"type:double precision;not null;default:0"`

	// Per-vector value history and pain-point confidence map, serialized.
	VectorHistory datatypes.JSON `gorm:"type:jsonb"`
	PainPoints    datatypes.JSON `gorm:"type:jsonb"`

	SupplierScore     float64 `gorm:"type:double precision;not null;default:0"`
	DistributorScore  float64 `gorm:"type:double precision;not null;default:0"`
	OverallConfidence float64 `gorm:"type:double precision;not null;default:0"`
	TotalInteractions int     `gorm:"not null;default:0"`

	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (VisitorPersona) TableName() string {
	return "visitor_personas"
}
