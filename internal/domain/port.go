package domain

import (
	"time"

	"github.com/google/uuid"
)

type Port struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name      string    `gorm:"column:name;not null;uniqueIndex" json:"name"`
	City      string    `gorm:"column:city" json:"city"`
	Country   string    `gorm:"column:country" json:"country"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Port) TableName() string { return "port" }

// Berth is a docking position within a port.
type Berth struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PortID    uuid.UUID `gorm:"type:uuid;not null;index" json:"port_id"`
	Port      *Port     `gorm:"constraint:OnDelete:CASCADE;foreignKey:PortID;references:ID" json:"port,omitempty"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	LengthM   float64   `gorm:"column:length_m;not null;default:0" json:"length_m"`
	DraftM    float64   `gorm:"column:draft_m;not null;default:0" json:"draft_m"`
	Status    string    `gorm:"column:status;not null;default:'available'" json:"status"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Berth) TableName() string { return "berth" }

// MaritimeRoute connects an origin port and a destination port.
type MaritimeRoute struct {
	ID                uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name              string    `gorm:"column:name;not null" json:"name"`
	OriginPortID      uuid.UUID `gorm:"type:uuid;not null;index" json:"origin_port_id"`
	OriginPort        *Port     `gorm:"foreignKey:OriginPortID;references:ID" json:"origin_port,omitempty"`
	DestinationPortID uuid.UUID `gorm:"type:uuid;not null;index" json:"destination_port_id"`
	DestinationPort   *Port     `gorm:"foreignKey:DestinationPortID;references:ID" json:"destination_port,omitempty"`
	DistanceNM        float64   `gorm:"column:distance_nm;not null;default:0" json:"distance_nm"`
	CreatedAt         time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt         time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (MaritimeRoute) TableName() string { return "maritime_route" }
