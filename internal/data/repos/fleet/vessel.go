package fleet

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/portwave/portwave-backend/internal/domain"
	"github.com/portwave/portwave-backend/internal/platform/dbctx"
	"github.com/portwave/portwave-backend/internal/platform/logger"
)

// VesselRepo reads go through the default GORM scope, so soft-deleted
// vessels are never returned.
type VesselRepo interface {
	Create(dbc dbctx.Context, rows []*types.Vessel) ([]*types.Vessel, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Vessel, error)
	List(dbc dbctx.Context, limit int) ([]*types.Vessel, error)
}

type vesselRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewVesselRepo(db *gorm.DB, log *logger.Logger) VesselRepo {
	return &vesselRepo{db: db, log: log.With("repo", "VesselRepo")}
}

func (r *vesselRepo) Create(dbc dbctx.Context, rows []*types.Vessel) ([]*types.Vessel, error) {
	if len(rows) == 0 {
		return []*types.Vessel{}, nil
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

func (r *vesselRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Vessel, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("missing vessel id")
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var out []*types.Vessel
	if err := txx.WithContext(dbc.Ctx).
		Model(&types.Vessel{}).
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

func (r *vesselRepo) List(dbc dbctx.Context, limit int) ([]*types.Vessel, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var out []*types.Vessel
	if err := txx.WithContext(dbc.Ctx).
		Model(&types.Vessel{}).
		Order("name ASC").
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
