package operations

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/portwave/portwave-backend/internal/data/repos/testutil"
	types "github.com/portwave/portwave-backend/internal/domain"
	"github.com/portwave/portwave-backend/internal/platform/dbctx"
)

func TestOperationRepoCreateAndGet(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	status := testutil.SeedOperationStatus(t, ctx, tx, "En Curso")
	repo := NewOperationRepo(db, testutil.Logger(t))

	created, err := repo.Create(dbc, &types.Operation{
		Code:     "OP-" + uuid.NewString(),
		StartAt:  time.Now().UTC(),
		StatusID: status.ID,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatalf("Create: id not assigned")
	}

	got, err := repo.GetByID(dbc, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil || got.Code != created.Code {
		t.Fatalf("GetByID: %+v", got)
	}
	if got.Status == nil || got.Status.Name != "En Curso" {
		t.Fatalf("GetByID should preload status: %+v", got.Status)
	}

	if missing, err := repo.GetByID(dbc, uuid.New()); err != nil || missing != nil {
		t.Fatalf("GetByID miss: row=%v err=%v", missing, err)
	}
}

func TestOperationRepoCodeExists(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	status := testutil.SeedOperationStatus(t, ctx, tx, "Finalizada")
	repo := NewOperationRepo(db, testutil.Logger(t))

	code := "OP-" + uuid.NewString()
	if exists, err := repo.CodeExists(dbc, code); err != nil || exists {
		t.Fatalf("CodeExists before insert: exists=%v err=%v", exists, err)
	}

	if _, err := repo.Create(dbc, &types.Operation{
		Code:     code,
		StartAt:  time.Now().UTC(),
		StatusID: status.ID,
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if exists, err := repo.CodeExists(dbc, code); err != nil || !exists {
		t.Fatalf("CodeExists after insert: exists=%v err=%v", exists, err)
	}
}
