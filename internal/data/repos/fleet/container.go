package fleet

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/portwave/portwave-backend/internal/domain"
	"github.com/portwave/portwave-backend/internal/platform/dbctx"
	"github.com/portwave/portwave-backend/internal/platform/logger"
)

type ContainerRepo interface {
	Create(dbc dbctx.Context, rows []*types.Container) ([]*types.Container, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Container, error)
	GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*types.Container, error)
}

type containerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewContainerRepo(db *gorm.DB, log *logger.Logger) ContainerRepo {
	return &containerRepo{db: db, log: log.With("repo", "ContainerRepo")}
}

func (r *containerRepo) Create(dbc dbctx.Context, rows []*types.Container) ([]*types.Container, error) {
	if len(rows) == 0 {
		return []*types.Container{}, nil
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

func (r *containerRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Container, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("missing container id")
	}
	rows, err := r.GetByIDs(dbc, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *containerRepo) GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*types.Container, error) {
	if len(ids) == 0 {
		return []*types.Container{}, nil
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var out []*types.Container
	if err := txx.WithContext(dbc.Ctx).
		Model(&types.Container{}).
		Where("id IN ?", ids).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
