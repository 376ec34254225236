package vocab

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	types "github.com/portwave/portwave-backend/internal/domain"
	"github.com/portwave/portwave-backend/internal/platform/dbctx"
	"github.com/portwave/portwave-backend/internal/platform/logger"
)

type NavigationStatusRepo interface {
	Create(dbc dbctx.Context, rows []*types.NavigationStatus) ([]*types.NavigationStatus, error)
	GetByName(dbc dbctx.Context, name string) (*types.NavigationStatus, error)
	List(dbc dbctx.Context) ([]*types.NavigationStatus, error)
}

type navigationStatusRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewNavigationStatusRepo(db *gorm.DB, log *logger.Logger) NavigationStatusRepo {
	return &navigationStatusRepo{db: db, log: log.With("repo", "NavigationStatusRepo")}
}

func (r *navigationStatusRepo) Create(dbc dbctx.Context, rows []*types.NavigationStatus) ([]*types.NavigationStatus, error) {
	if len(rows) == 0 {
		return []*types.NavigationStatus{}, nil
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

func (r *navigationStatusRepo) GetByName(dbc dbctx.Context, name string) (*types.NavigationStatus, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("missing navigation status name")
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var out []*types.NavigationStatus
	if err := txx.WithContext(dbc.Ctx).
		Model(&types.NavigationStatus{}).
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

func (r *navigationStatusRepo) List(dbc dbctx.Context) ([]*types.NavigationStatus, error) {
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var out []*types.NavigationStatus
	if err := txx.WithContext(dbc.Ctx).
		Model(&types.NavigationStatus{}).
		Order("name ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
