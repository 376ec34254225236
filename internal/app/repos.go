package app

import (
	"gorm.io/gorm"

	"github.com/portwave/portwave-backend/internal/data/repos/fleet"
	"github.com/portwave/portwave-backend/internal/data/repos/incidents"
	"github.com/portwave/portwave-backend/internal/data/repos/operations"
	portsrepo "github.com/portwave/portwave-backend/internal/data/repos/ports"
	"github.com/portwave/portwave-backend/internal/data/repos/vocab"
	"github.com/portwave/portwave-backend/internal/platform/logger"
)

type Repos struct {
	Operation          operations.OperationRepo
	MaritimeOperation  operations.MaritimeOperationRepo
	RouteAssignment    operations.RouteAssignmentRepo
	OperationContainer operations.OperationContainerRepo
	OperationCrew      operations.OperationCrewRepo

	Vessel    fleet.VesselRepo
	Container fleet.ContainerRepo
	Employee  fleet.EmployeeRepo

	Port  portsrepo.PortRepo
	Berth portsrepo.BerthRepo
	Route portsrepo.RouteRepo

	OperationStatus  vocab.OperationStatusRepo
	NavigationStatus vocab.NavigationStatusRepo

	Incident     incidents.IncidentRepo
	CodeSequence incidents.CodeSequenceRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Operation:          operations.NewOperationRepo(db, log),
		MaritimeOperation:  operations.NewMaritimeOperationRepo(db, log),
		RouteAssignment:    operations.NewRouteAssignmentRepo(db, log),
		OperationContainer: operations.NewOperationContainerRepo(db, log),
		OperationCrew:      operations.NewOperationCrewRepo(db, log),

		Vessel:    fleet.NewVesselRepo(db, log),
		Container: fleet.NewContainerRepo(db, log),
		Employee:  fleet.NewEmployeeRepo(db, log),

		Port:  portsrepo.NewPortRepo(db, log),
		Berth: portsrepo.NewBerthRepo(db, log),
		Route: portsrepo.NewRouteRepo(db, log),

		OperationStatus:  vocab.NewOperationStatusRepo(db, log),
		NavigationStatus: vocab.NewNavigationStatusRepo(db, log),

		Incident:     incidents.NewIncidentRepo(db, log),
		CodeSequence: incidents.NewCodeSequenceRepo(db, log),
	}
}
