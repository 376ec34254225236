package incidents

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/portwave/portwave-backend/internal/domain"
	"github.com/portwave/portwave-backend/internal/platform/dbctx"
	"github.com/portwave/portwave-backend/internal/platform/logger"
)

// CodeSequenceRepo hands out the next ordinal for a (prefix, period) pair.
// The counter row is locked FOR UPDATE for the remainder of the caller's
// transaction, so two transactions can never take the same ordinal; a plain
// count-then-insert would race here.
type CodeSequenceRepo interface {
	// Next requires dbc.Tx: the lock is only meaningful inside the
	// transaction that will insert the row using the returned ordinal.
	Next(dbc dbctx.Context, prefix, period string) (int, error)
}

type codeSequenceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCodeSequenceRepo(db *gorm.DB, log *logger.Logger) CodeSequenceRepo {
	return &codeSequenceRepo{db: db, log: log.With("repo", "CodeSequenceRepo")}
}

func (r *codeSequenceRepo) Next(dbc dbctx.Context, prefix, period string) (int, error) {
	prefix = strings.ToUpper(strings.TrimSpace(prefix))
	period = strings.TrimSpace(period)
	if prefix == "" || period == "" {
		return 0, fmt.Errorf("missing sequence prefix or period")
	}
	if dbc.Tx == nil {
		return 0, fmt.Errorf("Next requires dbc.Tx")
	}
	txx := dbc.Tx.WithContext(dbc.Ctx)

	// Make sure the counter row exists; concurrent creators collapse into
	// the unique (prefix, period) index.
	seed := &types.CodeSequence{Prefix: prefix, Period: period, Counter: 0}
	if err := txx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "prefix"}, {Name: "period"}},
		DoNothing: true,
	}).Create(seed).Error; err != nil {
		return 0, err
	}

	var row types.CodeSequence
	if err := txx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("prefix = ? AND period = ?", prefix, period).
		Take(&row).Error; err != nil {
		return 0, err
	}

	next := row.Counter + 1
	if err := txx.Model(&types.CodeSequence{}).
		Where("id = ?", row.ID).
		Update("counter", next).Error; err != nil {
		return 0, err
	}
	return next, nil
}
