package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	types "github.com/portwave/portwave-backend/internal/domain"
	"gorm.io/gorm"
)

func SeedOperationStatus(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.OperationStatus {
	tb.Helper()
	row := &types.OperationStatus{
		ID:   uuid.New(),
		Name: name,
	}
	if err := tx.WithContext(ctx).Create(row).Error; err != nil {
		tb.Fatalf("seed operation status: %v", err)
	}
	return row
}

func SeedNavigationStatus(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.NavigationStatus {
	tb.Helper()
	row := &types.NavigationStatus{
		ID:   uuid.New(),
		Name: name,
	}
	if err := tx.WithContext(ctx).Create(row).Error; err != nil {
		tb.Fatalf("seed navigation status: %v", err)
	}
	return row
}

func SeedVessel(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Vessel {
	tb.Helper()
	row := &types.Vessel{
		ID:          uuid.New(),
		Name:        name,
		IMONumber:   "IMO-" + uuid.NewString(),
		Flag:        "PA",
		CapacityTEU: 4500,
	}
	if err := tx.WithContext(ctx).Create(row).Error; err != nil {
		tb.Fatalf("seed vessel: %v", err)
	}
	return row
}

func SeedPort(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Port {
	tb.Helper()
	row := &types.Port{
		ID:      uuid.New(),
		Name:    name + "-" + uuid.NewString(),
		City:    "Callao",
		Country: "PE",
	}
	if err := tx.WithContext(ctx).Create(row).Error; err != nil {
		tb.Fatalf("seed port: %v", err)
	}
	return row
}

func SeedBerth(tb testing.TB, ctx context.Context, tx *gorm.DB, portID uuid.UUID, name string) *types.Berth {
	tb.Helper()
	row := &types.Berth{
		ID:      uuid.New(),
		PortID:  portID,
		Name:    name,
		LengthM: 320,
		DraftM:  14,
	}
	if err := tx.WithContext(ctx).Create(row).Error; err != nil {
		tb.Fatalf("seed berth: %v", err)
	}
	return row
}

func SeedRoute(tb testing.TB, ctx context.Context, tx *gorm.DB, originPortID, destinationPortID uuid.UUID) *types.MaritimeRoute {
	tb.Helper()
	row := &types.MaritimeRoute{
		ID:                uuid.New(),
		Name:              "route-" + uuid.NewString(),
		OriginPortID:      originPortID,
		DestinationPortID: destinationPortID,
		DistanceNM:        1240,
	}
	if err := tx.WithContext(ctx).Create(row).Error; err != nil {
		tb.Fatalf("seed route: %v", err)
	}
	return row
}

func SeedContainers(tb testing.TB, ctx context.Context, tx *gorm.DB, n int) []*types.Container {
	tb.Helper()
	rows := make([]*types.Container, 0, n)
	for i := 0; i < n; i++ {
		row := &types.Container{
			ID:       uuid.New(),
			Code:     fmt.Sprintf("CNT-%s", uuid.NewString()),
			Kind:     "dry",
			WeightKG: 21500,
		}
		if err := tx.WithContext(ctx).Create(row).Error; err != nil {
			tb.Fatalf("seed container %d: %v", i, err)
		}
		rows = append(rows, row)
	}
	return rows
}

func SeedEmployees(tb testing.TB, ctx context.Context, tx *gorm.DB, n int) []*types.Employee {
	tb.Helper()
	rows := make([]*types.Employee, 0, n)
	for i := 0; i < n; i++ {
		row := &types.Employee{
			ID:        uuid.New(),
			FirstName: fmt.Sprintf("Crew%d", i),
			LastName:  "Test",
			Role:      "crew",
		}
		if err := tx.WithContext(ctx).Create(row).Error; err != nil {
			tb.Fatalf("seed employee %d: %v", i, err)
		}
		rows = append(rows, row)
	}
	return rows
}
