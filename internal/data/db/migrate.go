package db

import (
	"gorm.io/gorm"

	types "github.com/portwave/portwave-backend/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(

		// Vocabularies
		&types.OperationStatus{},
		&types.NavigationStatus{},

		// Catalog (ports, routes, fleet)
		&types.Port{},
		&types.Berth{},
		&types.MaritimeRoute{},
		&types.Vessel{},
		&types.Container{},
		&types.Employee{},

		// Maritime operation aggregate
		&types.Operation{},
		&types.MaritimeOperation{},
		&types.RouteAssignment{},
		&types.OperationContainer{},
		&types.OperationCrew{},

		// Incidents + generated codes
		&types.Incident{},
		&types.CodeSequence{},
	)
}
