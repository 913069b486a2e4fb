package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"wellspring/internal/models/db_models"
)

type VitalsRepositoryInterface interface {
	CreateVital(ctx context.Context, vital *db_models.HealthVital) error
	ListByTeam(ctx context.Context, teamID uuid.UUID, page, pageSize int) ([]db_models.HealthVital, error)
}

type VitalsRepository struct {
	db *gorm.DB
}

func NewVitalsRepository(db *gorm.DB) VitalsRepositoryInterface {
	return &VitalsRepository{db: db}
}

func (r *VitalsRepository) CreateVital(ctx context.Context, vital *db_models.HealthVital) error {
	return r.db.WithContext(ctx).Create(vital).Error
}

func (r *VitalsRepository) ListByTeam(ctx context.Context, teamID uuid.UUID, page, pageSize int) ([]db_models.HealthVital, error) {
	var vitals []db_models.HealthVital
	err := r.db.WithContext(ctx).
		Where("care_team_id = ?", teamID).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("created_at DESC").
		Find(&vitals).Error
	return vitals, err
}
