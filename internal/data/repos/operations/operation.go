package operations

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/portwave/portwave-backend/internal/domain"
	"github.com/portwave/portwave-backend/internal/platform/dbctx"
	"github.com/portwave/portwave-backend/internal/platform/logger"
)

// OperationRepo writes exactly one base operation row per aggregate. It never
// opens or closes a transaction; that is the coordinator's job.
type OperationRepo interface {
	Create(dbc dbctx.Context, row *types.Operation) (*types.Operation, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Operation, error)
	// CodeExists is the fast-path duplicate check. The unique index on
	// operation.code stays the authoritative arbiter under races.
	CodeExists(dbc dbctx.Context, code string) (bool, error)
}

type operationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOperationRepo(db *gorm.DB, log *logger.Logger) OperationRepo {
	return &operationRepo{db: db, log: log.With("repo", "OperationRepo")}
}

func (r *operationRepo) Create(dbc dbctx.Context, row *types.Operation) (*types.Operation, error) {
	if row == nil {
		return nil, fmt.Errorf("missing operation row")
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

func (r *operationRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Operation, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("missing operation id")
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var out []*types.Operation
	if err := txx.WithContext(dbc.Ctx).
		Model(&types.Operation{}).
		Preload("Status").
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

func (r *operationRepo) CodeExists(dbc dbctx.Context, code string) (bool, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return false, fmt.Errorf("missing operation code")
	}
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var count int64
	if err := txx.WithContext(dbc.Ctx).
		Model(&types.Operation{}).
		Where("code = ?", code).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
