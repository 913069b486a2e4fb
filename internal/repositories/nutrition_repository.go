package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"wellspring/internal/models/db_models"
)

type NutritionRepositoryInterface interface {
	CreateLog(ctx context.Context, log *db_models.NutritionLog) error
	ListByTeam(ctx context.Context, teamID uuid.UUID, page, pageSize int) ([]db_models.NutritionLog, error)
}

type NutritionRepository struct {
	db *gorm.DB
}

func NewNutritionRepository(db *gorm.DB) NutritionRepositoryInterface {
	return &NutritionRepository{db: db}
}

func (r *NutritionRepository) CreateLog(ctx context.Context, log *db_models.NutritionLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *NutritionRepository) ListByTeam(ctx context.Context, teamID uuid.UUID, page, pageSize int) ([]db_models.NutritionLog, error) {
	var logs []db_models.NutritionLog
	err := r.db.WithContext(ctx).
		Where("care_team_id = ?", teamID).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("created_at DESC").
		Find(&logs).Error
	return logs, err
}
