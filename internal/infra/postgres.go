package infra

import (
	"os"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"wellspring/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {

	dsn := os.Getenv("POSTGRES_URL")

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		zap.S().Fatalw("error connecting to database", "error", err)
	}

	if err := connectionPool.AutoMigrate(
		&db_models.Profile{},
		&db_models.CareTeam{},
		&db_models.CareTeamMember{},
		&db_models.NutritionLog{},
		&db_models.HealthVital{},
	); err != nil {
		zap.S().Fatalw("auto-migration failed", "error", err)
	}

	return connectionPool
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		zap.S().Errorw("error getting database instance", "error", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		zap.S().Errorw("error closing database connection", "error", err)
	}
}
