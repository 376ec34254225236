package domain

import (
	"time"

	"github.com/google/uuid"
)

// OperationStatus is the status vocabulary for operations (planning, running,
// finished, cancelled). Rows are resolved by name at request time.
type OperationStatus struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string    `gorm:"column:name;not null;uniqueIndex" json:"name"`
	Description string    `gorm:"column:description" json:"description"`
	CreatedAt   time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (OperationStatus) TableName() string { return "operation_status" }

// NavigationStatus enumerates a vessel's travel phase (in port, underway,
// docked, anchored).
type NavigationStatus struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name      string    `gorm:"column:name;not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (NavigationStatus) TableName() string { return "navigation_status" }
