package aggregates

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CreateMaritimeOperationInput is the raw creation request after transport
// decoding. Vocabulary references arrive by name and are resolved to ids
// before any write.
type CreateMaritimeOperationInput struct {
	Code                 string
	StartAt              time.Time
	EndAt                *time.Time
	StatusName           string
	VesselID             uuid.UUID
	ContainerCount       int
	NavigationStatusName string
	TrajectoryPct        float64
	RouteID              uuid.UUID
	OriginBerthID        uuid.UUID
	DestinationBerthID   uuid.UUID
	ContainerIDs         []uuid.UUID
	CrewIDs              []uuid.UUID
}

// CreateMaritimeOperationResult carries the ids produced by the committed
// transaction.
type CreateMaritimeOperationResult struct {
	OperationID         uuid.UUID
	MaritimeOperationID uuid.UUID
}

// MaritimeOperationAggregate creates the five-record maritime operation
// aggregate as one atomic unit: base operation, maritime specialization,
// route assignment and the container/crew association fan-out. Partial
// aggregates are never visible; any writer failure rolls the whole
// transaction back.
type MaritimeOperationAggregate interface {
	Create(ctx context.Context, in CreateMaritimeOperationInput) (CreateMaritimeOperationResult, error)
}
