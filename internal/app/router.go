package app

import (
	"github.com/gin-gonic/gin"

	"github.com/portwave/portwave-backend/internal/http/middleware"
	"github.com/portwave/portwave-backend/internal/observability"
	"github.com/portwave/portwave-backend/internal/platform/logger"
)

func wireRouter(log *logger.Logger, cfg Config, handlers Handlers, metrics *observability.Metrics) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Metrics(metrics))

	router.GET("/healthcheck", handlers.Health.HealthCheck)
	if metrics != nil {
		router.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	// The original frontend calls the aggregate at the root path; the /api
	// group mirrors it next to the rest of the surface.
	router.POST("/maritime-operations", handlers.MaritimeOperation.Create)
	router.GET("/maritime-operations/:id", handlers.MaritimeOperation.GetByOperationID)

	api := router.Group("/api")
	{
		// Maritime operation aggregate
		api.POST("/maritime-operations", handlers.MaritimeOperation.Create)
		api.GET("/maritime-operations/:id", handlers.MaritimeOperation.GetByOperationID)

		// Incidents
		api.POST("/incidents", handlers.Incident.Report)
		api.GET("/incidents", handlers.Incident.ListRecent)
		api.GET("/incidents/:id", handlers.Incident.GetByID)

		// Fleet lookups
		api.GET("/vessels", handlers.Fleet.ListVessels)
		api.GET("/vessels/:id", handlers.Fleet.GetVessel)
		api.GET("/containers/:id", handlers.Fleet.GetContainer)
		api.GET("/employees/:id", handlers.Fleet.GetEmployee)

		// Catalog lookups
		api.GET("/ports", handlers.Catalog.ListPorts)
		api.GET("/ports/:id/berths", handlers.Catalog.ListBerthsByPort)
		api.GET("/maritime-routes/:id", handlers.Catalog.GetRoute)
		api.GET("/operation-statuses", handlers.Catalog.ListOperationStatuses)
		api.GET("/navigation-statuses", handlers.Catalog.ListNavigationStatuses)
	}

	return router
}
