package domain

import (
	"time"

	"github.com/google/uuid"
)

type Container struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Code      string    `gorm:"column:code;not null;uniqueIndex" json:"code"`
	Kind      string    `gorm:"column:kind;not null;default:'dry'" json:"kind"`
	WeightKG  float64   `gorm:"column:weight_kg;not null;default:0" json:"weight_kg"`
	Status    string    `gorm:"column:status;not null;default:'in_yard'" json:"status"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Container) TableName() string { return "container" }

type Employee struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	FirstName string    `gorm:"column:first_name;not null" json:"first_name"`
	LastName  string    `gorm:"column:last_name;not null" json:"last_name"`
	Role      string    `gorm:"column:role;not null;default:'crew'" json:"role"`
	Status    string    `gorm:"column:status;not null;default:'active'" json:"status"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Employee) TableName() string { return "employee" }
