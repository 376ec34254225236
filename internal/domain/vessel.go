package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vessel is soft-deleted; operation creation must never reference a deleted
// vessel, which the default GORM scope enforces on lookups.
type Vessel struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string         `gorm:"column:name;not null" json:"name"`
	IMONumber   string         `gorm:"column:imo_number;not null;uniqueIndex" json:"imo_number"`
	Flag        string         `gorm:"column:flag" json:"flag"`
	CapacityTEU int            `gorm:"column:capacity_teu;not null;default:0" json:"capacity_teu"`
	CreatedAt   time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Vessel) TableName() string { return "vessel" }
