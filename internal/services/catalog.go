package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	portsrepo "github.com/portwave/portwave-backend/internal/data/repos/ports"
	"github.com/portwave/portwave-backend/internal/data/repos/vocab"
	types "github.com/portwave/portwave-backend/internal/domain"
	"github.com/portwave/portwave-backend/internal/platform/dbctx"
	"github.com/portwave/portwave-backend/internal/platform/logger"
)

// CatalogService serves the read-only lookup surface over ports, berths,
// routes and the status vocabularies.
type CatalogService interface {
	ListPorts(ctx context.Context, limit int) ([]*types.Port, error)
	ListBerthsByPort(ctx context.Context, portID uuid.UUID) ([]*types.Berth, error)
	GetRoute(ctx context.Context, id uuid.UUID) (*types.MaritimeRoute, error)
	ListOperationStatuses(ctx context.Context) ([]*types.OperationStatus, error)
	ListNavigationStatuses(ctx context.Context) ([]*types.NavigationStatus, error)
}

type catalogService struct {
	db                 *gorm.DB
	log                *logger.Logger
	ports              portsrepo.PortRepo
	berths             portsrepo.BerthRepo
	routes             portsrepo.RouteRepo
	operationStatuses  vocab.OperationStatusRepo
	navigationStatuses vocab.NavigationStatusRepo
}

func NewCatalogService(
	db *gorm.DB,
	baseLog *logger.Logger,
	portRepo portsrepo.PortRepo,
	berthRepo portsrepo.BerthRepo,
	routeRepo portsrepo.RouteRepo,
	operationStatusRepo vocab.OperationStatusRepo,
	navigationStatusRepo vocab.NavigationStatusRepo,
) CatalogService {
	return &catalogService{
		db:                 db,
		log:                baseLog.With("service", "CatalogService"),
		ports:              portRepo,
		berths:             berthRepo,
		routes:             routeRepo,
		operationStatuses:  operationStatusRepo,
		navigationStatuses: navigationStatusRepo,
	}
}

func (s *catalogService) ListPorts(ctx context.Context, limit int) ([]*types.Port, error) {
	out, err := s.ports.List(dbctx.Context{Ctx: ctx}, limit)
	if err != nil {
		return nil, fmt.Errorf("list ports: %w", err)
	}
	return out, nil
}

func (s *catalogService) ListBerthsByPort(ctx context.Context, portID uuid.UUID) ([]*types.Berth, error) {
	out, err := s.berths.ListByPort(dbctx.Context{Ctx: ctx}, portID)
	if err != nil {
		return nil, fmt.Errorf("list berths: %w", err)
	}
	return out, nil
}

func (s *catalogService) GetRoute(ctx context.Context, id uuid.UUID) (*types.MaritimeRoute, error) {
	return s.routes.GetByID(dbctx.Context{Ctx: ctx}, id)
}

func (s *catalogService) ListOperationStatuses(ctx context.Context) ([]*types.OperationStatus, error) {
	return s.operationStatuses.List(dbctx.Context{Ctx: ctx})
}

func (s *catalogService) ListNavigationStatuses(ctx context.Context) ([]*types.NavigationStatus, error) {
	return s.navigationStatuses.List(dbctx.Context{Ctx: ctx})
}
