package fleet

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/portwave/portwave-backend/internal/domain"
	"github.com/portwave/portwave-backend/internal/platform/dbctx"
	"github.com/portwave/portwave-backend/internal/platform/logger"
)

type EmployeeRepo interface {
	Create(dbc dbctx.Context, rows []*types.Employee) ([]*types.Employee, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Employee, error)
	GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*types.Employee, error)
}

type employeeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEmployeeRepo(db *gorm.DB, log *logger.Logger) EmployeeRepo {
	return &employeeRepo{db: db, log: log.With("repo", "EmployeeRepo")}
}

func (r *employeeRepo) Create(dbc dbctx.Context, rows []*types.Employee) ([]*types.Employee, error) {
	if len(rows) == 0 {
		return []*types.Employee{}, nil
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

func (r *employeeRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Employee, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("missing employee id")
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

func (r *employeeRepo) GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*types.Employee, error) {
	if len(ids) == 0 {
		return []*types.Employee{}, nil
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var out []*types.Employee
	if err := txx.WithContext(dbc.Ctx).
		Model(&types.Employee{}).
		Where("id IN ?", ids).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
