package operations

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/portwave/portwave-backend/internal/domain"
	"github.com/portwave/portwave-backend/internal/platform/dbctx"
	"github.com/portwave/portwave-backend/internal/platform/logger"
)

type RouteAssignmentRepo interface {
	Create(dbc dbctx.Context, row *types.RouteAssignment) (*types.RouteAssignment, error)
	GetByMaritimeOperationID(dbc dbctx.Context, maritimeOperationID uuid.UUID) (*types.RouteAssignment, error)
}

type routeAssignmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRouteAssignmentRepo(db *gorm.DB, log *logger.Logger) RouteAssignmentRepo {
	return &routeAssignmentRepo{db: db, log: log.With("repo", "RouteAssignmentRepo")}
}

func (r *routeAssignmentRepo) Create(dbc dbctx.Context, row *types.RouteAssignment) (*types.RouteAssignment, error) {
	if row == nil {
		return nil, fmt.Errorf("missing route assignment row")
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	if err := txx.WithContext(dbc.Ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *routeAssignmentRepo) GetByMaritimeOperationID(dbc dbctx.Context, maritimeOperationID uuid.UUID) (*types.RouteAssignment, error) {
	if maritimeOperationID == uuid.Nil {
		return nil, fmt.Errorf("missing maritime operation id")
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var out []*types.RouteAssignment
	if err := txx.WithContext(dbc.Ctx).
		Model(&types.RouteAssignment{}).
		Preload("Route").
		Preload("OriginBerth").
		Preload("DestinationBerth").
		Where("maritime_operation_id = ?", maritimeOperationID).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}
