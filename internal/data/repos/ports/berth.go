package ports

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/portwave/portwave-backend/internal/domain"
	"github.com/portwave/portwave-backend/internal/platform/dbctx"
	"github.com/portwave/portwave-backend/internal/platform/logger"
)

type BerthRepo interface {
	Create(dbc dbctx.Context, rows []*types.Berth) ([]*types.Berth, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Berth, error)
	ListByPort(dbc dbctx.Context, portID uuid.UUID) ([]*types.Berth, error)
}

type berthRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewBerthRepo(db *gorm.DB, log *logger.Logger) BerthRepo {
	return &berthRepo{db: db, log: log.With("repo", "BerthRepo")}
}

func (r *berthRepo) Create(dbc dbctx.Context, rows []*types.Berth) ([]*types.Berth, error) {
	if len(rows) == 0 {
		return []*types.Berth{}, nil
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

func (r *berthRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Berth, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("missing berth id")
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var out []*types.Berth
	if err := txx.WithContext(dbc.Ctx).
		Model(&types.Berth{}).
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

func (r *berthRepo) ListByPort(dbc dbctx.Context, portID uuid.UUID) ([]*types.Berth, error) {
	if portID == uuid.Nil {
		return nil, fmt.Errorf("missing port id")
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var out []*types.Berth
	if err := txx.WithContext(dbc.Ctx).
		Model(&types.Berth{}).
		Where("port_id = ?", portID).
		Order("name ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
