package ports

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/portwave/portwave-backend/internal/domain"
	"github.com/portwave/portwave-backend/internal/platform/dbctx"
	"github.com/portwave/portwave-backend/internal/platform/logger"
)

type PortRepo interface {
	Create(dbc dbctx.Context, rows []*types.Port) ([]*types.Port, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Port, error)
	List(dbc dbctx.Context, limit int) ([]*types.Port, error)
}

type portRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPortRepo(db *gorm.DB, log *logger.Logger) PortRepo {
	return &portRepo{db: db, log: log.With("repo", "PortRepo")}
}

func (r *portRepo) Create(dbc dbctx.Context, rows []*types.Port) ([]*types.Port, error) {
	if len(rows) == 0 {
		return []*types.Port{}, nil
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

func (r *portRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Port, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("missing port id")
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var out []*types.Port
	if err := txx.WithContext(dbc.Ctx).
		Model(&types.Port{}).
		Where("id = ?", id).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *portRepo) List(dbc dbctx.Context, limit int) ([]*types.Port, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var out []*types.Port
	if err := txx.WithContext(dbc.Ctx).
		Model(&types.Port{}).
		Order("name ASC").
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
