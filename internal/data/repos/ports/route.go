package ports

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/portwave/portwave-backend/internal/domain"
	"github.com/portwave/portwave-backend/internal/platform/dbctx"
	"github.com/portwave/portwave-backend/internal/platform/logger"
)

type RouteRepo interface {
	Create(dbc dbctx.Context, rows []*types.MaritimeRoute) ([]*types.MaritimeRoute, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.MaritimeRoute, error)
}

type routeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRouteRepo(db *gorm.DB, log *logger.Logger) RouteRepo {
	return &routeRepo{db: db, log: log.With("repo", "RouteRepo")}
}

func (r *routeRepo) Create(dbc dbctx.Context, rows []*types.MaritimeRoute) ([]*types.MaritimeRoute, error) {
	if len(rows) == 0 {
		return []*types.MaritimeRoute{}, nil
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

func (r *routeRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.MaritimeRoute, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("missing route id")
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var out []*types.MaritimeRoute
	if err := txx.WithContext(dbc.Ctx).
		Model(&types.MaritimeRoute{}).
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
