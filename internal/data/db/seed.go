package db

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/portwave/portwave-backend/internal/domain"
)

// SeedVocabularies inserts the baseline status vocabularies so that
// name resolution works on a fresh database. Existing rows are left alone.
func SeedVocabularies(db *gorm.DB) error {
	operationStatuses := []*types.OperationStatus{
		{Name: "En Planificación", Description: "operation scheduled, not started"},
		{Name: "En Curso", Description: "operation underway"},
		{Name: "Finalizada", Description: "operation completed"},
		{Name: "Cancelada", Description: "operation cancelled"},
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&operationStatuses).Error; err != nil {
		return err
	}

	navigationStatuses := []*types.NavigationStatus{
		{Name: "En Puerto"},
		{Name: "En Navegación"},
		{Name: "Atracado"},
		{Name: "Fondeado"},
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&navigationStatuses).Error
}
