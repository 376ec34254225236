package operations

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/portwave/portwave-backend/internal/domain"
	"github.com/portwave/portwave-backend/internal/platform/dbctx"
	"github.com/portwave/portwave-backend/internal/platform/logger"
)

type MaritimeOperationRepo interface {
	Create(dbc dbctx.Context, row *types.MaritimeOperation) (*types.MaritimeOperation, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.MaritimeOperation, error)
	GetByOperationID(dbc dbctx.Context, operationID uuid.UUID) (*types.MaritimeOperation, error)
}

type maritimeOperationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMaritimeOperationRepo(db *gorm.DB, log *logger.Logger) MaritimeOperationRepo {
	return &maritimeOperationRepo{db: db, log: log.With("repo", "MaritimeOperationRepo")}
}

func (r *maritimeOperationRepo) Create(dbc dbctx.Context, row *types.MaritimeOperation) (*types.MaritimeOperation, error) {
	if row == nil {
		return nil, fmt.Errorf("missing maritime operation row")
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

func (r *maritimeOperationRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.MaritimeOperation, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("missing maritime operation id")
	}
	return r.getOne(dbc, "id = ?", id)
}

func (r *maritimeOperationRepo) GetByOperationID(dbc dbctx.Context, operationID uuid.UUID) (*types.MaritimeOperation, error) {
	if operationID == uuid.Nil {
		return nil, fmt.Errorf("missing operation id")
	}
	return r.getOne(dbc, "operation_id = ?", operationID)
}

func (r *maritimeOperationRepo) getOne(dbc dbctx.Context, query string, arg any) (*types.MaritimeOperation, error) {
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var out []*types.MaritimeOperation
	if err := txx.WithContext(dbc.Ctx).
		Model(&types.MaritimeOperation{}).
		Preload("NavigationStatus").
		Preload("Vessel").
		Where(query, arg).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}
