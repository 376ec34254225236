package incidents

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/portwave/portwave-backend/internal/domain"
	"github.com/portwave/portwave-backend/internal/platform/dbctx"
	"github.com/portwave/portwave-backend/internal/platform/logger"
)

type IncidentRepo interface {
	Create(dbc dbctx.Context, row *types.Incident) (*types.Incident, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Incident, error)
	ListRecent(dbc dbctx.Context, limit int) ([]*types.Incident, error)
}

type incidentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewIncidentRepo(db *gorm.DB, log *logger.Logger) IncidentRepo {
	return &incidentRepo{db: db, log: log.With("repo", "IncidentRepo")}
}

func (r *incidentRepo) Create(dbc dbctx.Context, row *types.Incident) (*types.Incident, error) {
	if row == nil {
		return nil, fmt.Errorf("missing incident row")
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

func (r *incidentRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Incident, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("missing incident id")
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var out []*types.Incident
	if err := txx.WithContext(dbc.Ctx).
		Model(&types.Incident{}).
		Preload("Vessel").
		Preload("Berth").
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

func (r *incidentRepo) ListRecent(dbc dbctx.Context, limit int) ([]*types.Incident, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var out []*types.Incident
	if err := txx.WithContext(dbc.Ctx).
		Model(&types.Incident{}).
		Order("reported_at DESC").
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
