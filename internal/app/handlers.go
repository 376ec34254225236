package app

import (
	"github.com/portwave/portwave-backend/internal/http/handlers"
	"github.com/portwave/portwave-backend/internal/platform/logger"
)

type Handlers struct {
	Health            *handlers.HealthHandler
	MaritimeOperation *handlers.MaritimeOperationHandler
	Incident          *handlers.IncidentHandler
	Catalog           *handlers.CatalogHandler
	Fleet             *handlers.FleetHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:            handlers.NewHealthHandler(),
		MaritimeOperation: handlers.NewMaritimeOperationHandler(log, services.Operation),
		Incident:          handlers.NewIncidentHandler(log, services.Incident),
		Catalog:           handlers.NewCatalogHandler(log, services.Catalog),
		Fleet:             handlers.NewFleetHandler(log, services.Fleet),
	}
}
