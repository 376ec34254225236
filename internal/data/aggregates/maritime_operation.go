package aggregates

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/portwave/portwave-backend/internal/data/repos/fleet"
	"github.com/portwave/portwave-backend/internal/data/repos/operations"
	"github.com/portwave/portwave-backend/internal/data/repos/ports"
	"github.com/portwave/portwave-backend/internal/data/repos/vocab"
	types "github.com/portwave/portwave-backend/internal/domain"
	domainagg "github.com/portwave/portwave-backend/internal/domain/aggregates"
	"github.com/portwave/portwave-backend/internal/platform/dbctx"
)

// DefaultNavigationStatus is applied when the request omits a navigation
// status name.
const DefaultNavigationStatus = "En Puerto"

// VocabCache is an optional read-through cache for status name resolution.
// A miss always falls back to the store.
type VocabCache interface {
	GetStatusID(ctx context.Context, kind, name string) (uuid.UUID, bool)
	SetStatusID(ctx context.Context, kind, name string, id uuid.UUID)
}

type MaritimeOperationAggregateDeps struct {
	Base BaseDeps

	Operations          operations.OperationRepo
	MaritimeOperations  operations.MaritimeOperationRepo
	RouteAssignments    operations.RouteAssignmentRepo
	OperationContainers operations.OperationContainerRepo
	OperationCrew       operations.OperationCrewRepo

	Vessels            fleet.VesselRepo
	Containers         fleet.ContainerRepo
	Employees          fleet.EmployeeRepo
	Routes             ports.RouteRepo
	Berths             ports.BerthRepo
	OperationStatuses  vocab.OperationStatusRepo
	NavigationStatuses vocab.NavigationStatusRepo

	Vocab VocabCache
}

type maritimeOperationAggregate struct {
	deps MaritimeOperationAggregateDeps
}

func NewMaritimeOperationAggregate(deps MaritimeOperationAggregateDeps) domainagg.MaritimeOperationAggregate {
	deps.Base = deps.Base.withDefaults()
	return &maritimeOperationAggregate{deps: deps}
}

// createCommand is the fully-resolved form of the request: ids only, codes
// already generated. Nothing past this point resolves names or re-validates.
type createCommand struct {
	code               string
	detailCode         string
	startAt            time.Time
	endAt              *time.Time
	statusID           uuid.UUID
	vesselID           uuid.UUID
	containerCount     int
	navigationStatusID uuid.UUID
	trajectoryPct      float64
	routeID            uuid.UUID
	originBerthID      uuid.UUID
	destinationBerthID uuid.UUID
	containerIDs       []uuid.UUID
	crewIDs            []uuid.UUID
}

func (a *maritimeOperationAggregate) Create(ctx context.Context, in domainagg.CreateMaritimeOperationInput) (domainagg.CreateMaritimeOperationResult, error) {
	const op = "Operations.Maritime.Create"
	var out domainagg.CreateMaritimeOperationResult

	if err := validateCreateInput(in); err != nil {
		return out, MapError(op, err)
	}

	cmd, err := a.resolve(ctx, in)
	if err != nil {
		return out, MapError(op, err)
	}

	// Fast-path duplicate check. The unique index on operation.code remains
	// the final arbiter inside the transaction.
	read := dbctx.Context{Ctx: ctx}
	exists, err := a.deps.Operations.CodeExists(read, cmd.code)
	if err != nil {
		return out, MapError(op, err)
	}
	if exists {
		return out, MapError(op, ConflictError(fmt.Sprintf("operation code already exists: %s", cmd.code)))
	}

	err = executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		assignedAt := time.Now().UTC()

		operation, err := a.deps.Operations.Create(dbc, &types.Operation{
			Code:     cmd.code,
			StartAt:  cmd.startAt,
			EndAt:    cmd.endAt,
			StatusID: cmd.statusID,
		})
		if err != nil {
			return err
		}

		detail, err := a.deps.MaritimeOperations.Create(dbc, &types.MaritimeOperation{
			Code:               cmd.detailCode,
			OperationID:        operation.ID,
			ContainerCount:     cmd.containerCount,
			NavigationStatusID: cmd.navigationStatusID,
			TrajectoryPct:      cmd.trajectoryPct,
			VesselID:           cmd.vesselID,
		})
		if err != nil {
			return err
		}

		if _, err := a.deps.RouteAssignments.Create(dbc, &types.RouteAssignment{
			MaritimeOperationID: detail.ID,
			RouteID:             cmd.routeID,
			OriginBerthID:       cmd.originBerthID,
			DestinationBerthID:  cmd.destinationBerthID,
		}); err != nil {
			return err
		}

		containerRows := make([]*types.OperationContainer, 0, len(cmd.containerIDs))
		for _, containerID := range cmd.containerIDs {
			containerRows = append(containerRows, &types.OperationContainer{
				OperationID: operation.ID,
				ContainerID: containerID,
				AssignedAt:  assignedAt,
			})
		}
		if _, err := a.deps.OperationContainers.Create(dbc, containerRows); err != nil {
			return err
		}

		crewRows := make([]*types.OperationCrew, 0, len(cmd.crewIDs))
		for _, employeeID := range cmd.crewIDs {
			crewRows = append(crewRows, &types.OperationCrew{
				OperationID: operation.ID,
				EmployeeID:  employeeID,
				AssignedAt:  assignedAt,
			})
		}
		if _, err := a.deps.OperationCrew.Create(dbc, crewRows); err != nil {
			return err
		}

		out, err = assembleResult(operation.ID, detail.ID)
		return err
	})
	return out, err
}

// validateCreateInput checks the request's own structure. It performs no I/O.
func validateCreateInput(in domainagg.CreateMaritimeOperationInput) error {
	if strings.TrimSpace(in.Code) == "" {
		return ValidationError("codigo is required")
	}
	if in.StartAt.IsZero() {
		return ValidationError("fecha_inicio is required")
	}
	if in.EndAt != nil && !in.EndAt.After(in.StartAt) {
		return ValidationError("fecha_fin must be strictly after fecha_inicio")
	}
	if strings.TrimSpace(in.StatusName) == "" {
		return ValidationError("estado_nombre is required")
	}
	if in.VesselID == uuid.Nil {
		return ValidationError("id_buque is required")
	}
	if in.RouteID == uuid.Nil {
		return ValidationError("id_ruta_maritima is required")
	}
	if in.OriginBerthID == uuid.Nil {
		return ValidationError("id_muelle_origen is required")
	}
	if in.DestinationBerthID == uuid.Nil {
		return ValidationError("id_muelle_destino is required")
	}
	if in.ContainerCount < 0 {
		return ValidationError("cantidad_contenedores must be >= 0")
	}
	if in.TrajectoryPct < 0 || in.TrajectoryPct > 100 {
		return ValidationError("porcentaje_trayecto must be between 0 and 100")
	}
	if dup := firstDuplicate(in.ContainerIDs); dup != uuid.Nil {
		return ValidationError(fmt.Sprintf("duplicate container id: %s", dup))
	}
	if dup := firstDuplicate(in.CrewIDs); dup != uuid.Nil {
		return ValidationError(fmt.Sprintf("duplicate crew id: %s", dup))
	}
	return nil
}

// resolve turns every by-name reference into an id and verifies every by-id
// reference exists. It runs outside the transaction and performs no writes,
// so invalid requests never touch the write path.
func (a *maritimeOperationAggregate) resolve(ctx context.Context, in domainagg.CreateMaritimeOperationInput) (createCommand, error) {
	dbc := dbctx.Context{Ctx: ctx}
	cmd := createCommand{
		code:               strings.TrimSpace(in.Code),
		startAt:            in.StartAt.UTC(),
		vesselID:           in.VesselID,
		containerCount:     in.ContainerCount,
		trajectoryPct:      in.TrajectoryPct,
		routeID:            in.RouteID,
		originBerthID:      in.OriginBerthID,
		destinationBerthID: in.DestinationBerthID,
		containerIDs:       in.ContainerIDs,
		crewIDs:            in.CrewIDs,
	}
	cmd.detailCode = DeriveMaritimeOperationCode(cmd.code)
	if in.EndAt != nil {
		t := in.EndAt.UTC()
		cmd.endAt = &t
	}

	statusName := strings.TrimSpace(in.StatusName)
	statusID, err := a.resolveStatus(dbc, "operation_status", statusName, func(name string) (uuid.UUID, bool, error) {
		row, err := a.deps.OperationStatuses.GetByName(dbc, name)
		if err != nil || row == nil {
			return uuid.Nil, false, err
		}
		return row.ID, true, nil
	})
	if err != nil {
		return cmd, err
	}
	cmd.statusID = statusID

	navName := strings.TrimSpace(in.NavigationStatusName)
	if navName == "" {
		navName = DefaultNavigationStatus
	}
	navID, err := a.resolveStatus(dbc, "navigation_status", navName, func(name string) (uuid.UUID, bool, error) {
		row, err := a.deps.NavigationStatuses.GetByName(dbc, name)
		if err != nil || row == nil {
			return uuid.Nil, false, err
		}
		return row.ID, true, nil
	})
	if err != nil {
		return cmd, err
	}
	cmd.navigationStatusID = navID

	vessel, err := a.deps.Vessels.GetByID(dbc, in.VesselID)
	if err != nil {
		return cmd, err
	}
	if vessel == nil {
		return cmd, NotFoundError(fmt.Sprintf("vessel not found: %s", in.VesselID))
	}

	route, err := a.deps.Routes.GetByID(dbc, in.RouteID)
	if err != nil {
		return cmd, err
	}
	if route == nil {
		return cmd, NotFoundError(fmt.Sprintf("maritime route not found: %s", in.RouteID))
	}

	originBerth, err := a.deps.Berths.GetByID(dbc, in.OriginBerthID)
	if err != nil {
		return cmd, err
	}
	if originBerth == nil {
		return cmd, NotFoundError(fmt.Sprintf("origin berth not found: %s", in.OriginBerthID))
	}
	destinationBerth, err := a.deps.Berths.GetByID(dbc, in.DestinationBerthID)
	if err != nil {
		return cmd, err
	}
	if destinationBerth == nil {
		return cmd, NotFoundError(fmt.Sprintf("destination berth not found: %s", in.DestinationBerthID))
	}

	// Soft business rule: berths should belong to the ports the route
	// connects. Logged, not rejected.
	if a.deps.Base.Log != nil {
		if originBerth.PortID != route.OriginPortID || destinationBerth.PortID != route.DestinationPortID {
			a.deps.Base.Log.Warn("berths do not match route ports",
				"route_id", route.ID,
				"origin_berth_port", originBerth.PortID,
				"route_origin_port", route.OriginPortID,
				"destination_berth_port", destinationBerth.PortID,
				"route_destination_port", route.DestinationPortID,
			)
		}
	}

	if missing, err := a.missingContainer(dbc, in.ContainerIDs); err != nil {
		return cmd, err
	} else if missing != uuid.Nil {
		return cmd, NotFoundError(fmt.Sprintf("container not found: %s", missing))
	}

	if missing, err := a.missingEmployee(dbc, in.CrewIDs); err != nil {
		return cmd, err
	} else if missing != uuid.Nil {
		return cmd, NotFoundError(fmt.Sprintf("employee not found: %s", missing))
	}

	return cmd, nil
}

func (a *maritimeOperationAggregate) resolveStatus(dbc dbctx.Context, kind, name string, lookup func(string) (uuid.UUID, bool, error)) (uuid.UUID, error) {
	if a.deps.Vocab != nil {
		if id, ok := a.deps.Vocab.GetStatusID(dbc.Ctx, kind, name); ok {
			return id, nil
		}
	}
	id, found, err := lookup(name)
	if err != nil {
		return uuid.Nil, err
	}
	if !found {
		return uuid.Nil, NotFoundError(fmt.Sprintf("%s not found: %s", kind, name))
	}
	if a.deps.Vocab != nil {
		a.deps.Vocab.SetStatusID(dbc.Ctx, kind, name, id)
	}
	return id, nil
}

func (a *maritimeOperationAggregate) missingContainer(dbc dbctx.Context, ids []uuid.UUID) (uuid.UUID, error) {
	if len(ids) == 0 {
		return uuid.Nil, nil
	}
	rows, err := a.deps.Containers.GetByIDs(dbc, ids)
	if err != nil {
		return uuid.Nil, err
	}
	return firstMissing(ids, containerIDSet(rows)), nil
}

func (a *maritimeOperationAggregate) missingEmployee(dbc dbctx.Context, ids []uuid.UUID) (uuid.UUID, error) {
	if len(ids) == 0 {
		return uuid.Nil, nil
	}
	rows, err := a.deps.Employees.GetByIDs(dbc, ids)
	if err != nil {
		return uuid.Nil, err
	}
	return firstMissing(ids, employeeIDSet(rows)), nil
}

// assembleResult builds the caller-facing result. A nil id here is a
// programmer error, not caller input.
func assembleResult(operationID, maritimeOperationID uuid.UUID) (domainagg.CreateMaritimeOperationResult, error) {
	if operationID == uuid.Nil || maritimeOperationID == uuid.Nil {
		return domainagg.CreateMaritimeOperationResult{}, domainagg.NewError(
			domainagg.CodeInternal, "Operations.Maritime.Create", "committed aggregate produced nil ids", nil)
	}
	return domainagg.CreateMaritimeOperationResult{
		OperationID:         operationID,
		MaritimeOperationID: maritimeOperationID,
	}, nil
}

func firstDuplicate(ids []uuid.UUID) uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return id
		}
		seen[id] = struct{}{}
	}
	return uuid.Nil
}

func firstMissing(wanted []uuid.UUID, have map[uuid.UUID]struct{}) uuid.UUID {
	for _, id := range wanted {
		if _, ok := have[id]; !ok {
			return id
		}
	}
	return uuid.Nil
}

func containerIDSet(rows []*types.Container) map[uuid.UUID]struct{} {
	out := make(map[uuid.UUID]struct{}, len(rows))
	for _, row := range rows {
		if row != nil {
			out[row.ID] = struct{}{}
		}
	}
	return out
}

func employeeIDSet(rows []*types.Employee) map[uuid.UUID]struct{} {
	out := make(map[uuid.UUID]struct{}, len(rows))
	for _, row := range rows {
		if row != nil {
			out[row.ID] = struct{}{}
		}
	}
	return out
}
