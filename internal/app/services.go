package app

import (
	"gorm.io/gorm"

	redisclient "github.com/portwave/portwave-backend/internal/clients/redis"
	"github.com/portwave/portwave-backend/internal/data/aggregates"
	"github.com/portwave/portwave-backend/internal/observability"
	"github.com/portwave/portwave-backend/internal/platform/logger"
	"github.com/portwave/portwave-backend/internal/services"
)

type Services struct {
	Operation services.OperationService
	Incident  services.IncidentService
	Catalog   services.CatalogService
	Fleet     services.FleetService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, repos Repos, metrics *observability.Metrics) Services {
	log.Info("Wiring services...")

	runner := aggregates.NewGormTxRunner(db)
	base := aggregates.BaseDeps{
		DB:     db,
		Log:    log,
		Runner: runner,
		Hooks:  aggregates.NewMetricsHooks(metrics),
	}

	// The vocabulary cache is optional; without Redis the aggregate resolves
	// names straight from the store every time.
	var vocabCache aggregates.VocabCache
	if cfg.RedisAddr != "" {
		cache, err := redisclient.NewVocabCache(log, cfg.RedisAddr, cfg.VocabCacheTTL)
		if err != nil {
			log.Warn("vocab cache unavailable, continuing without it", "error", err)
		} else {
			vocabCache = cache
		}
	}

	maritimeAggregate := aggregates.NewMaritimeOperationAggregate(aggregates.MaritimeOperationAggregateDeps{
		Base: base,

		Operations:          repos.Operation,
		MaritimeOperations:  repos.MaritimeOperation,
		RouteAssignments:    repos.RouteAssignment,
		OperationContainers: repos.OperationContainer,
		OperationCrew:       repos.OperationCrew,

		Vessels:            repos.Vessel,
		Containers:         repos.Container,
		Employees:          repos.Employee,
		Routes:             repos.Route,
		Berths:             repos.Berth,
		OperationStatuses:  repos.OperationStatus,
		NavigationStatuses: repos.NavigationStatus,

		Vocab: vocabCache,
	})

	return Services{
		Operation: services.NewOperationService(
			db, log, maritimeAggregate,
			repos.Operation, repos.MaritimeOperation, repos.RouteAssignment,
			repos.OperationContainer, repos.OperationCrew,
		),
		Incident: services.NewIncidentService(
			db, log, runner,
			repos.Incident, repos.CodeSequence, repos.Vessel, repos.Berth,
		),
		Catalog: services.NewCatalogService(
			db, log,
			repos.Port, repos.Berth, repos.Route,
			repos.OperationStatus, repos.NavigationStatus,
		),
		Fleet: services.NewFleetService(db, log, repos.Vessel, repos.Container, repos.Employee),
	}
}
