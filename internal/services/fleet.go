package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/portwave/portwave-backend/internal/data/repos/fleet"
	types "github.com/portwave/portwave-backend/internal/domain"
	"github.com/portwave/portwave-backend/internal/platform/dbctx"
	"github.com/portwave/portwave-backend/internal/platform/logger"
)

// FleetService serves the read-only lookup surface over vessels, containers
// and employees.
type FleetService interface {
	ListVessels(ctx context.Context, limit int) ([]*types.Vessel, error)
	GetVessel(ctx context.Context, id uuid.UUID) (*types.Vessel, error)
	GetContainer(ctx context.Context, id uuid.UUID) (*types.Container, error)
	GetEmployee(ctx context.Context, id uuid.UUID) (*types.Employee, error)
}

type fleetService struct {
	db         *gorm.DB
	log        *logger.Logger
	vessels    fleet.VesselRepo
	containers fleet.ContainerRepo
	employees  fleet.EmployeeRepo
}

func NewFleetService(
	db *gorm.DB,
	baseLog *logger.Logger,
	vesselRepo fleet.VesselRepo,
	containerRepo fleet.ContainerRepo,
	employeeRepo fleet.EmployeeRepo,
) FleetService {
	return &fleetService{
		db:         db,
		log:        baseLog.With("service", "FleetService"),
		vessels:    vesselRepo,
		containers: containerRepo,
		employees:  employeeRepo,
	}
}

func (s *fleetService) ListVessels(ctx context.Context, limit int) ([]*types.Vessel, error) {
	out, err := s.vessels.List(dbctx.Context{Ctx: ctx}, limit)
	if err != nil {
		return nil, fmt.Errorf("list vessels: %w", err)
	}
	return out, nil
}

func (s *fleetService) GetVessel(ctx context.Context, id uuid.UUID) (*types.Vessel, error) {
	return s.vessels.GetByID(dbctx.Context{Ctx: ctx}, id)
}

func (s *fleetService) GetContainer(ctx context.Context, id uuid.UUID) (*types.Container, error) {
	return s.containers.GetByID(dbctx.Context{Ctx: ctx}, id)
}

func (s *fleetService) GetEmployee(ctx context.Context, id uuid.UUID) (*types.Employee, error) {
	return s.employees.GetByID(dbctx.Context{Ctx: ctx}, id)
}
