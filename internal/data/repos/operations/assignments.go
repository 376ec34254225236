package operations

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/portwave/portwave-backend/internal/domain"
	"github.com/portwave/portwave-backend/internal/platform/dbctx"
	"github.com/portwave/portwave-backend/internal/platform/logger"
)

// OperationContainerRepo and OperationCrewRepo back the fan-out writers:
// one row per association, all rows created inside the aggregate transaction.

type OperationContainerRepo interface {
	Create(dbc dbctx.Context, rows []*types.OperationContainer) ([]*types.OperationContainer, error)
	ListByOperation(dbc dbctx.Context, operationID uuid.UUID) ([]*types.OperationContainer, error)
	CountByOperation(dbc dbctx.Context, operationID uuid.UUID) (int64, error)
}

type operationContainerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOperationContainerRepo(db *gorm.DB, log *logger.Logger) OperationContainerRepo {
	return &operationContainerRepo{db: db, log: log.With("repo", "OperationContainerRepo")}
}

func (r *operationContainerRepo) Create(dbc dbctx.Context, rows []*types.OperationContainer) ([]*types.OperationContainer, error) {
	if len(rows) == 0 {
		return []*types.OperationContainer{}, nil
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	if err := txx.WithContext(dbc.Ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *operationContainerRepo) ListByOperation(dbc dbctx.Context, operationID uuid.UUID) ([]*types.OperationContainer, error) {
	if operationID == uuid.Nil {
		return nil, fmt.Errorf("missing operation id")
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var out []*types.OperationContainer
	if err := txx.WithContext(dbc.Ctx).
		Model(&types.OperationContainer{}).
		Preload("Container").
		Where("operation_id = ?", operationID).
		Order("assigned_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *operationContainerRepo) CountByOperation(dbc dbctx.Context, operationID uuid.UUID) (int64, error) {
	if operationID == uuid.Nil {
		return 0, fmt.Errorf("missing operation id")
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var count int64
	if err := txx.WithContext(dbc.Ctx).
		Model(&types.OperationContainer{}).
		Where("operation_id = ?", operationID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type OperationCrewRepo interface {
	Create(dbc dbctx.Context, rows []*types.OperationCrew) ([]*types.OperationCrew, error)
	ListByOperation(dbc dbctx.Context, operationID uuid.UUID) ([]*types.OperationCrew, error)
}

type operationCrewRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOperationCrewRepo(db *gorm.DB, log *logger.Logger) OperationCrewRepo {
	return &operationCrewRepo{db: db, log: log.With("repo", "OperationCrewRepo")}
}

func (r *operationCrewRepo) Create(dbc dbctx.Context, rows []*types.OperationCrew) ([]*types.OperationCrew, error) {
	if len(rows) == 0 {
		return []*types.OperationCrew{}, nil
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	if err := txx.WithContext(dbc.Ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *operationCrewRepo) ListByOperation(dbc dbctx.Context, operationID uuid.UUID) ([]*types.OperationCrew, error) {
	if operationID == uuid.Nil {
		return nil, fmt.Errorf("missing operation id")
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var out []*types.OperationCrew
	if err := txx.WithContext(dbc.Ctx).
		Model(&types.OperationCrew{}).
		Preload("Employee").
		Where("operation_id = ?", operationID).
		Order("assigned_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
