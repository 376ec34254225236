package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Incident carries a period-scoped generated code (INC-YYMM-####).
type Incident struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Code        string         `gorm:"column:code;not null;uniqueIndex" json:"code"`
	Kind        string         `gorm:"column:kind;not null" json:"kind"`
	Severity    string         `gorm:"column:severity;not null;default:'low'" json:"severity"`
	Description string         `gorm:"column:description" json:"description"`
	VesselID    *uuid.UUID     `gorm:"type:uuid;index" json:"vessel_id,omitempty"`
	Vessel      *Vessel        `gorm:"foreignKey:VesselID;references:ID" json:"vessel,omitempty"`
	BerthID     *uuid.UUID     `gorm:"type:uuid;index" json:"berth_id,omitempty"`
	Berth       *Berth         `gorm:"foreignKey:BerthID;references:ID" json:"berth,omitempty"`
	ReportedAt  time.Time      `gorm:"column:reported_at;not null" json:"reported_at"`
	Metadata    datatypes.JSON `gorm:"column:metadata;type:jsonb" json:"metadata"`
	CreatedAt   time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (Incident) TableName() string { return "incident" }

// CodeSequence is the per-prefix, per-period counter row backing generated
// codes. The row is locked FOR UPDATE while the next ordinal is taken, so
// concurrent writers cannot observe the same counter value.
type CodeSequence struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Prefix    string    `gorm:"column:prefix;not null;uniqueIndex:ux_code_sequence" json:"prefix"`
	Period    string    `gorm:"column:period;not null;uniqueIndex:ux_code_sequence" json:"period"`
	Counter   int       `gorm:"column:counter;not null;default:0" json:"counter"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (CodeSequence) TableName() string { return "code_sequence" }
