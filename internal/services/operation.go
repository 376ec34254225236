package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/portwave/portwave-backend/internal/data/repos/operations"
	types "github.com/portwave/portwave-backend/internal/domain"
	domainagg "github.com/portwave/portwave-backend/internal/domain/aggregates"
	"github.com/portwave/portwave-backend/internal/platform/dbctx"
	"github.com/portwave/portwave-backend/internal/platform/logger"
)

// MaritimeOperationView is the read-back shape for a committed aggregate.
type MaritimeOperationView struct {
	Operation       *types.Operation            `json:"operation"`
	Detail          *types.MaritimeOperation    `json:"detail"`
	RouteAssignment *types.RouteAssignment      `json:"route_assignment"`
	Containers      []*types.OperationContainer `json:"containers"`
	Crew            []*types.OperationCrew      `json:"crew"`
}

type OperationService interface {
	CreateMaritime(ctx context.Context, in domainagg.CreateMaritimeOperationInput) (domainagg.CreateMaritimeOperationResult, error)
	GetMaritimeByOperationID(ctx context.Context, operationID uuid.UUID) (*MaritimeOperationView, error)
}

type operationService struct {
	db        *gorm.DB
	log       *logger.Logger
	aggregate domainagg.MaritimeOperationAggregate

	operations          operations.OperationRepo
	maritimeOperations  operations.MaritimeOperationRepo
	routeAssignments    operations.RouteAssignmentRepo
	operationContainers operations.OperationContainerRepo
	operationCrew       operations.OperationCrewRepo
}

func NewOperationService(
	db *gorm.DB,
	baseLog *logger.Logger,
	aggregate domainagg.MaritimeOperationAggregate,
	operationRepo operations.OperationRepo,
	maritimeOperationRepo operations.MaritimeOperationRepo,
	routeAssignmentRepo operations.RouteAssignmentRepo,
	operationContainerRepo operations.OperationContainerRepo,
	operationCrewRepo operations.OperationCrewRepo,
) OperationService {
	return &operationService{
		db:                  db,
		log:                 baseLog.With("service", "OperationService"),
		aggregate:           aggregate,
		operations:          operationRepo,
		maritimeOperations:  maritimeOperationRepo,
		routeAssignments:    routeAssignmentRepo,
		operationContainers: operationContainerRepo,
		operationCrew:       operationCrewRepo,
	}
}

func (s *operationService) CreateMaritime(ctx context.Context, in domainagg.CreateMaritimeOperationInput) (domainagg.CreateMaritimeOperationResult, error) {
	res, err := s.aggregate.Create(ctx, in)
	if err != nil {
		s.log.Warn("maritime operation create failed",
			"code", in.Code,
			"error_code", string(domainagg.CodeOf(err)),
			"error", err,
		)
		return res, err
	}
	s.log.Info("maritime operation created",
		"code", in.Code,
		"operation_id", res.OperationID,
		"maritime_operation_id", res.MaritimeOperationID,
	)
	return res, nil
}

func (s *operationService) GetMaritimeByOperationID(ctx context.Context, operationID uuid.UUID) (*MaritimeOperationView, error) {
	dbc := dbctx.Context{Ctx: ctx}

	operation, err := s.operations.GetByID(dbc, operationID)
	if err != nil {
		return nil, fmt.Errorf("load operation: %w", err)
	}
	if operation == nil {
		return nil, nil
	}
	detail, err := s.maritimeOperations.GetByOperationID(dbc, operationID)
	if err != nil {
		return nil, fmt.Errorf("load maritime operation: %w", err)
	}
	view := &MaritimeOperationView{Operation: operation, Detail: detail}

	if detail != nil {
		assignment, err := s.routeAssignments.GetByMaritimeOperationID(dbc, detail.ID)
		if err != nil {
			return nil, fmt.Errorf("load route assignment: %w", err)
		}
		view.RouteAssignment = assignment
	}

	containers, err := s.operationContainers.ListByOperation(dbc, operationID)
	if err != nil {
		return nil, fmt.Errorf("load container assignments: %w", err)
	}
	view.Containers = containers

	crew, err := s.operationCrew.ListByOperation(dbc, operationID)
	if err != nil {
		return nil, fmt.Errorf("load crew assignments: %w", err)
	}
	view.Crew = crew

	return view, nil
}
