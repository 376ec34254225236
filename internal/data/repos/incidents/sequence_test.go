package incidents

import (
	"context"
	"testing"

	"github.com/portwave/portwave-backend/internal/data/repos/testutil"
	"github.com/portwave/portwave-backend/internal/platform/dbctx"
)

func TestCodeSequenceRepoNextIsMonotonic(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	repo := NewCodeSequenceRepo(db, testutil.Logger(t))

	for want := 1; want <= 3; want++ {
		got, err := repo.Next(dbc, "INC", "2405")
		if err != nil {
			t.Fatalf("Next #%d: %v", want, err)
		}
		if got != want {
			t.Fatalf("Next #%d: want=%d got=%d", want, want, got)
		}
	}
}

func TestCodeSequenceRepoPeriodsAreIndependent(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	repo := NewCodeSequenceRepo(db, testutil.Logger(t))

	if got, err := repo.Next(dbc, "INC", "2405"); err != nil || got != 1 {
		t.Fatalf("first period: got=%d err=%v", got, err)
	}
	if got, err := repo.Next(dbc, "INC", "2406"); err != nil || got != 1 {
		t.Fatalf("second period starts fresh: got=%d err=%v", got, err)
	}
	if got, err := repo.Next(dbc, "REP", "2405"); err != nil || got != 1 {
		t.Fatalf("second prefix starts fresh: got=%d err=%v", got, err)
	}
	if got, err := repo.Next(dbc, "INC", "2405"); err != nil || got != 2 {
		t.Fatalf("first period continues: got=%d err=%v", got, err)
	}
}

func TestCodeSequenceRepoNextRequiresTransaction(t *testing.T) {
	db := testutil.DB(t)
	repo := NewCodeSequenceRepo(db, testutil.Logger(t))

	if _, err := repo.Next(dbctx.Context{Ctx: context.Background()}, "INC", "2405"); err == nil {
		t.Fatalf("expected error without dbc.Tx")
	}
}

func TestCodeSequenceRepoNextValidatesKey(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}

	repo := NewCodeSequenceRepo(db, testutil.Logger(t))

	if _, err := repo.Next(dbc, "", "2405"); err == nil {
		t.Fatalf("expected error for empty prefix")
	}
	if _, err := repo.Next(dbc, "INC", "  "); err == nil {
		t.Fatalf("expected error for empty period")
	}
}
