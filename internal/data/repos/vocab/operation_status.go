package vocab

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	types "github.com/portwave/portwave-backend/internal/domain"
	"github.com/portwave/portwave-backend/internal/platform/dbctx"
	"github.com/portwave/portwave-backend/internal/platform/logger"
)

type OperationStatusRepo interface {
	Create(dbc dbctx.Context, rows []*types.OperationStatus) ([]*types.OperationStatus, error)
	// GetByName returns (nil, nil) when no row matches; callers decide how
	// a miss is reported.
	GetByName(dbc dbctx.Context, name string) (*types.OperationStatus, error)
	List(dbc dbctx.Context) ([]*types.OperationStatus, error)
}

type operationStatusRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOperationStatusRepo(db *gorm.DB, log *logger.Logger) OperationStatusRepo {
	return &operationStatusRepo{db: db, log: log.With("repo", "OperationStatusRepo")}
}

func (r *operationStatusRepo) Create(dbc dbctx.Context, rows []*types.OperationStatus) ([]*types.OperationStatus, error) {
	if len(rows) == 0 {
		return []*types.OperationStatus{}, nil
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

func (r *operationStatusRepo) GetByName(dbc dbctx.Context, name string) (*types.OperationStatus, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("missing status name")
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var out []*types.OperationStatus
	if err := txx.WithContext(dbc.Ctx).
		Model(&types.OperationStatus{}).
		Where("name = ?", name).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *operationStatusRepo) List(dbc dbctx.Context) ([]*types.OperationStatus, error) {
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var out []*types.OperationStatus
	if err := txx.WithContext(dbc.Ctx).
		Model(&types.OperationStatus{}).
		Order("name ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
