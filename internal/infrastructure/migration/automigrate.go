package migration

import (
	"fmt"

	"gorm.io/gorm"

	"garrison/internal/infrastructure/persistence/models"
	"garrison/internal/shared/logger"
)

// GormAutoMigrateStrategy uses gorm's schema sync. Development only.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.automigrate"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, migrateModels ...interface{}) error {
	if len(migrateModels) == 0 {
		migrateModels = AutoMigrateModels()
	}

	s.logger.Infow("starting gorm auto-migration", "models_count", len(migrateModels))

	if err := db.AutoMigrate(migrateModels...); err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}

	s.logger.Infow("gorm auto-migration completed")
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_automigrate"
}

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.BaseModel{},
		&models.UserModel{},
		&models.AssetModel{},
		&models.PurchaseModel{},
		&models.TransferModel{},
		&models.AssignmentModel{},
		&models.LogModel{},
	}
}
