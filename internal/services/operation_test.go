package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/portwave/portwave-backend/internal/data/aggregates"
	aggtest "github.com/portwave/portwave-backend/internal/data/aggregates/testutil"
	"github.com/portwave/portwave-backend/internal/data/repos/fleet"
	"github.com/portwave/portwave-backend/internal/data/repos/operations"
	portsrepo "github.com/portwave/portwave-backend/internal/data/repos/ports"
	repotest "github.com/portwave/portwave-backend/internal/data/repos/testutil"
	"github.com/portwave/portwave-backend/internal/data/repos/vocab"
	domainagg "github.com/portwave/portwave-backend/internal/domain/aggregates"
)

type operationFixture struct {
	svc   OperationService
	hooks *aggtest.HooksRecorder
	input domainagg.CreateMaritimeOperationInput
}

func newOperationFixture(t *testing.T) *operationFixture {
	t.Helper()
	db := repotest.DB(t)
	tx := repotest.Tx(t, db)
	log := repotest.Logger(t)
	ctx := context.Background()

	status := repotest.SeedOperationStatus(t, ctx, tx, "En Planificación")
	repotest.SeedNavigationStatus(t, ctx, tx, aggregates.DefaultNavigationStatus)
	originPort := repotest.SeedPort(t, ctx, tx, "callao")
	destinationPort := repotest.SeedPort(t, ctx, tx, "guayaquil")
	origin := repotest.SeedBerth(t, ctx, tx, originPort.ID, "M-2")
	destination := repotest.SeedBerth(t, ctx, tx, destinationPort.ID, "M-5")
	route := repotest.SeedRoute(t, ctx, tx, originPort.ID, destinationPort.ID)
	vessel := repotest.SeedVessel(t, ctx, tx, "MV Pacifico")
	containers := repotest.SeedContainers(t, ctx, tx, 3)
	employees := repotest.SeedEmployees(t, ctx, tx, 2)

	hooks := &aggtest.HooksRecorder{}

	operationRepo := operations.NewOperationRepo(tx, log)
	maritimeRepo := operations.NewMaritimeOperationRepo(tx, log)
	routeAssignmentRepo := operations.NewRouteAssignmentRepo(tx, log)
	containerAssignmentRepo := operations.NewOperationContainerRepo(tx, log)
	crewAssignmentRepo := operations.NewOperationCrewRepo(tx, log)

	aggregate := aggregates.NewMaritimeOperationAggregate(aggregates.MaritimeOperationAggregateDeps{
		Base: aggregates.BaseDeps{
			DB:     tx,
			Log:    log,
			Runner: aggregates.NewGormTxRunner(tx),
			Hooks:  hooks,
		},
		Operations:          operationRepo,
		MaritimeOperations:  maritimeRepo,
		RouteAssignments:    routeAssignmentRepo,
		OperationContainers: containerAssignmentRepo,
		OperationCrew:       crewAssignmentRepo,

		Vessels:            fleet.NewVesselRepo(tx, log),
		Containers:         fleet.NewContainerRepo(tx, log),
		Employees:          fleet.NewEmployeeRepo(tx, log),
		Routes:             portsrepo.NewRouteRepo(tx, log),
		Berths:             portsrepo.NewBerthRepo(tx, log),
		OperationStatuses:  vocab.NewOperationStatusRepo(tx, log),
		NavigationStatuses: vocab.NewNavigationStatusRepo(tx, log),
	})

	svc := NewOperationService(
		tx, log, aggregate,
		operationRepo, maritimeRepo, routeAssignmentRepo,
		containerAssignmentRepo, crewAssignmentRepo,
	)

	containerIDs := make([]uuid.UUID, 0, len(containers))
	for _, c := range containers {
		containerIDs = append(containerIDs, c.ID)
	}
	crewIDs := make([]uuid.UUID, 0, len(employees))
	for _, e := range employees {
		crewIDs = append(crewIDs, e.ID)
	}
	start := time.Date(2024, time.June, 3, 6, 0, 0, 0, time.UTC)
	return &operationFixture{
		svc:   svc,
		hooks: hooks,
		input: domainagg.CreateMaritimeOperationInput{
			Code:               "OP-2024-2001",
			StartAt:            start,
			StatusName:         status.Name,
			VesselID:           vessel.ID,
			ContainerCount:     len(containerIDs),
			RouteID:            route.ID,
			OriginBerthID:      origin.ID,
			DestinationBerthID: destination.ID,
			ContainerIDs:       containerIDs,
			CrewIDs:            crewIDs,
		},
	}
}

func TestOperationServiceCreateAndReadBack(t *testing.T) {
	f := newOperationFixture(t)
	ctx := context.Background()

	res, err := f.svc.CreateMaritime(ctx, f.input)
	if err != nil {
		t.Fatalf("CreateMaritime: %v", err)
	}

	if len(f.hooks.Operations) != 1 || f.hooks.Operations[0].Status != "success" {
		t.Fatalf("aggregate hook events: %+v", f.hooks.Operations)
	}

	view, err := f.svc.GetMaritimeByOperationID(ctx, res.OperationID)
	if err != nil {
		t.Fatalf("GetMaritimeByOperationID: %v", err)
	}
	if view == nil || view.Operation == nil || view.Detail == nil {
		t.Fatalf("incomplete view: %+v", view)
	}
	if view.Operation.Code != f.input.Code {
		t.Fatalf("operation code: want=%s got=%s", f.input.Code, view.Operation.Code)
	}
	if view.Detail.ID != res.MaritimeOperationID {
		t.Fatalf("detail id: want=%s got=%s", res.MaritimeOperationID, view.Detail.ID)
	}
	if view.RouteAssignment == nil || view.RouteAssignment.RouteID != f.input.RouteID {
		t.Fatalf("route assignment: %+v", view.RouteAssignment)
	}
	if len(view.Containers) != 3 {
		t.Fatalf("containers in view: want=3 got=%d", len(view.Containers))
	}
	if len(view.Crew) != 2 {
		t.Fatalf("crew in view: want=2 got=%d", len(view.Crew))
	}
}

func TestOperationServiceCreateDuplicateDoesNotReachTransaction(t *testing.T) {
	f := newOperationFixture(t)
	ctx := context.Background()

	if _, err := f.svc.CreateMaritime(ctx, f.input); err != nil {
		t.Fatalf("first CreateMaritime: %v", err)
	}
	_, err := f.svc.CreateMaritime(ctx, f.input)
	if err == nil {
		t.Fatalf("expected conflict")
	}
	if !domainagg.IsCode(err, domainagg.CodeConflict) {
		t.Fatalf("expected conflict code, got %q (%v)", domainagg.CodeOf(err), err)
	}

	// The duplicate is caught by the pre-transaction code check, so only the
	// first call reaches the write path.
	if len(f.hooks.Operations) != 1 {
		t.Fatalf("aggregate hook events: %+v", f.hooks.Operations)
	}

	view, err := f.svc.GetMaritimeByOperationID(ctx, uuid.New())
	if err != nil || view != nil {
		t.Fatalf("unknown operation should read back as nil view: view=%v err=%v", view, err)
	}
}
