package domain

import (
	"time"

	"github.com/google/uuid"
)

// Operation is the base record of the maritime operation aggregate. Its code
// is caller supplied and globally unique; the unique index is the final
// arbiter when two requests race on the same code.
type Operation struct {
	ID        uuid.UUID        `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Code      string           `gorm:"column:code;not null;uniqueIndex" json:"code"`
	StartAt   time.Time        `gorm:"column:start_at;not null" json:"start_at"`
	EndAt     *time.Time       `gorm:"column:end_at" json:"end_at,omitempty"`
	StatusID  uuid.UUID        `gorm:"type:uuid;not null;index" json:"status_id"`
	Status    *OperationStatus `gorm:"foreignKey:StatusID;references:ID" json:"status,omitempty"`
	CreatedAt time.Time        `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time        `gorm:"not null;default:now()" json:"updated_at"`
}

func (Operation) TableName() string { return "operation" }

// MaritimeOperation is the 1:1 specialization of an Operation. Its code is
// derived deterministically from the operation code.
type MaritimeOperation struct {
	ID                 uuid.UUID         `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Code               string            `gorm:"column:code;not null;uniqueIndex" json:"code"`
	OperationID        uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex" json:"operation_id"`
	Operation          *Operation        `gorm:"constraint:OnDelete:CASCADE;foreignKey:OperationID;references:ID" json:"operation,omitempty"`
	ContainerCount     int               `gorm:"column:container_count;not null;default:0" json:"container_count"`
	NavigationStatusID uuid.UUID         `gorm:"type:uuid;not null;index" json:"navigation_status_id"`
	NavigationStatus   *NavigationStatus `gorm:"foreignKey:NavigationStatusID;references:ID" json:"navigation_status,omitempty"`
	TrajectoryPct      float64           `gorm:"column:trajectory_pct;not null;default:0" json:"trajectory_pct"`
	VesselID           uuid.UUID         `gorm:"type:uuid;not null;index" json:"vessel_id"`
	Vessel             *Vessel           `gorm:"foreignKey:VesselID;references:ID" json:"vessel,omitempty"`
	CreatedAt          time.Time         `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt          time.Time         `gorm:"not null;default:now()" json:"updated_at"`
}

func (MaritimeOperation) TableName() string { return "maritime_operation" }

// RouteAssignment pins a maritime operation to a route and its origin and
// destination berths.
type RouteAssignment struct {
	ID                  uuid.UUID          `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	MaritimeOperationID uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex" json:"maritime_operation_id"`
	MaritimeOperation   *MaritimeOperation `gorm:"constraint:OnDelete:CASCADE;foreignKey:MaritimeOperationID;references:ID" json:"maritime_operation,omitempty"`
	RouteID             uuid.UUID          `gorm:"type:uuid;not null;index" json:"route_id"`
	Route               *MaritimeRoute     `gorm:"foreignKey:RouteID;references:ID" json:"route,omitempty"`
	OriginBerthID       uuid.UUID          `gorm:"type:uuid;not null;index" json:"origin_berth_id"`
	OriginBerth         *Berth             `gorm:"foreignKey:OriginBerthID;references:ID" json:"origin_berth,omitempty"`
	DestinationBerthID  uuid.UUID          `gorm:"type:uuid;not null;index" json:"destination_berth_id"`
	DestinationBerth    *Berth             `gorm:"foreignKey:DestinationBerthID;references:ID" json:"destination_berth,omitempty"`
	CreatedAt           time.Time          `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt           time.Time          `gorm:"not null;default:now()" json:"updated_at"`
}

func (RouteAssignment) TableName() string { return "route_assignment" }

// OperationContainer links one container to one operation at a given date.
type OperationContainer struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	OperationID uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:ux_operation_container" json:"operation_id"`
	Operation   *Operation `gorm:"constraint:OnDelete:CASCADE;foreignKey:OperationID;references:ID" json:"operation,omitempty"`
	ContainerID uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:ux_operation_container" json:"container_id"`
	Container   *Container `gorm:"foreignKey:ContainerID;references:ID" json:"container,omitempty"`
	AssignedAt  time.Time  `gorm:"column:assigned_at;not null;uniqueIndex:ux_operation_container" json:"assigned_at"`
	CreatedAt   time.Time  `gorm:"not null;default:now()" json:"created_at"`
}

func (OperationContainer) TableName() string { return "operation_container" }

// OperationCrew links one employee to one operation at a given date.
type OperationCrew struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	OperationID uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:ux_operation_crew" json:"operation_id"`
	Operation   *Operation `gorm:"constraint:OnDelete:CASCADE;foreignKey:OperationID;references:ID" json:"operation,omitempty"`
	EmployeeID  uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:ux_operation_crew" json:"employee_id"`
	Employee    *Employee  `gorm:"foreignKey:EmployeeID;references:ID" json:"employee,omitempty"`
	AssignedAt  time.Time  `gorm:"column:assigned_at;not null;uniqueIndex:ux_operation_crew" json:"assigned_at"`
	CreatedAt   time.Time  `gorm:"not null;default:now()" json:"created_at"`
}

func (OperationCrew) TableName() string { return "operation_crew" }
