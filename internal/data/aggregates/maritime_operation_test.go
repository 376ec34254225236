package aggregates

import (
	"testing"
	"time"

	"github.com/google/uuid"
	domainagg "github.com/portwave/portwave-backend/internal/domain/aggregates"
)

func validInput() domainagg.CreateMaritimeOperationInput {
	start := time.Date(2024, time.May, 10, 8, 0, 0, 0, time.UTC)
	end := start.Add(72 * time.Hour)
	return domainagg.CreateMaritimeOperationInput{
		Code:               "OP-2024-0001",
		StartAt:            start,
		EndAt:              &end,
		StatusName:         "En Planificación",
		VesselID:           uuid.New(),
		ContainerCount:     3,
		TrajectoryPct:      0,
		RouteID:            uuid.New(),
		OriginBerthID:      uuid.New(),
		DestinationBerthID: uuid.New(),
		ContainerIDs:       []uuid.UUID{uuid.New(), uuid.New(), uuid.New()},
		CrewIDs:            []uuid.UUID{uuid.New(), uuid.New()},
	}
}

func TestValidateCreateInputAcceptsValidRequest(t *testing.T) {
	if err := validateCreateInput(validInput()); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}
}

func TestValidateCreateInputAcceptsEmptyAssignmentLists(t *testing.T) {
	in := validInput()
	in.ContainerIDs = []uuid.UUID{}
	in.CrewIDs = []uuid.UUID{}
	if err := validateCreateInput(in); err != nil {
		t.Fatalf("empty lists rejected: %v", err)
	}
}

func TestValidateCreateInputAcceptsOpenEndedOperation(t *testing.T) {
	in := validInput()
	in.EndAt = nil
	if err := validateCreateInput(in); err != nil {
		t.Fatalf("nil end date rejected: %v", err)
	}
}

func TestValidateCreateInputRejections(t *testing.T) {
	dup := uuid.New()

	cases := []struct {
		name   string
		mutate func(*domainagg.CreateMaritimeOperationInput)
	}{
		{"empty code", func(in *domainagg.CreateMaritimeOperationInput) { in.Code = "   " }},
		{"zero start", func(in *domainagg.CreateMaritimeOperationInput) { in.StartAt = time.Time{} }},
		{"end before start", func(in *domainagg.CreateMaritimeOperationInput) {
			before := in.StartAt.Add(-time.Hour)
			in.EndAt = &before
		}},
		{"end equals start", func(in *domainagg.CreateMaritimeOperationInput) {
			same := in.StartAt
			in.EndAt = &same
		}},
		{"empty status name", func(in *domainagg.CreateMaritimeOperationInput) { in.StatusName = "" }},
		{"nil vessel id", func(in *domainagg.CreateMaritimeOperationInput) { in.VesselID = uuid.Nil }},
		{"nil route id", func(in *domainagg.CreateMaritimeOperationInput) { in.RouteID = uuid.Nil }},
		{"nil origin berth", func(in *domainagg.CreateMaritimeOperationInput) { in.OriginBerthID = uuid.Nil }},
		{"nil destination berth", func(in *domainagg.CreateMaritimeOperationInput) { in.DestinationBerthID = uuid.Nil }},
		{"negative container count", func(in *domainagg.CreateMaritimeOperationInput) { in.ContainerCount = -1 }},
		{"trajectory below range", func(in *domainagg.CreateMaritimeOperationInput) { in.TrajectoryPct = -0.1 }},
		{"trajectory above range", func(in *domainagg.CreateMaritimeOperationInput) { in.TrajectoryPct = 100.5 }},
		{"duplicate container id", func(in *domainagg.CreateMaritimeOperationInput) {
			in.ContainerIDs = []uuid.UUID{dup, uuid.New(), dup}
		}},
		{"duplicate crew id", func(in *domainagg.CreateMaritimeOperationInput) {
			in.CrewIDs = []uuid.UUID{dup, dup}
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			err := validateCreateInput(in)
			if err == nil {
				t.Fatalf("expected validation error")
			}
			mapped := MapError("op", err)
			if !domainagg.IsCode(mapped, domainagg.CodeValidation) {
				t.Fatalf("expected validation code, got %q (%v)", domainagg.CodeOf(mapped), mapped)
			}
		})
	}
}

func TestFirstDuplicate(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	if got := firstDuplicate([]uuid.UUID{a, b}); got != uuid.Nil {
		t.Fatalf("no duplicate expected, got %s", got)
	}
	if got := firstDuplicate([]uuid.UUID{a, b, a}); got != a {
		t.Fatalf("duplicate: want=%s got=%s", a, got)
	}
	if got := firstDuplicate(nil); got != uuid.Nil {
		t.Fatalf("nil slice: got %s", got)
	}
}

func TestFirstMissing(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	have := map[uuid.UUID]struct{}{a: {}, b: {}}
	if got := firstMissing([]uuid.UUID{a, b}, have); got != uuid.Nil {
		t.Fatalf("nothing missing expected, got %s", got)
	}
	if got := firstMissing([]uuid.UUID{a, c, b}, have); got != c {
		t.Fatalf("missing id: want=%s got=%s", c, got)
	}
}
