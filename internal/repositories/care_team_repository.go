package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"wellspring/internal/models/db_models"
)

type CareTeamRepositoryInterface interface {
	CreateTeam(ctx context.Context, team *db_models.CareTeam) error
	AddMember(ctx context.Context, member *db_models.CareTeamMember) error
	GetMembership(ctx context.Context, teamID, profileID uuid.UUID) (*db_models.CareTeamMember, error)
	ListByProfile(ctx context.Context, profileID uuid.UUID, page, pageSize int) ([]db_models.CareTeam, error)
}

type CareTeamRepository struct {
	db *gorm.DB
}

func NewCareTeamRepository(db *gorm.DB) CareTeamRepositoryInterface {
	return &CareTeamRepository{db: db}
}

// CreateTeam and AddMember are deliberately separate round trips, not one
// transaction: a failed membership insert must leave the team row persisted.
func (r *CareTeamRepository) CreateTeam(ctx context.Context, team *db_models.CareTeam) error {
	return r.db.WithContext(ctx).Create(team).Error
}

func (r *CareTeamRepository) AddMember(ctx context.Context, member *db_models.CareTeamMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *CareTeamRepository) GetMembership(ctx context.Context, teamID, profileID uuid.UUID) (*db_models.CareTeamMember, error) {
	var member db_models.CareTeamMember
	err := r.db.WithContext(ctx).
		Where("care_team_id = ? AND user_id = ?", teamID, profileID).
		First(&member).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *CareTeamRepository) ListByProfile(ctx context.Context, profileID uuid.UUID, page, pageSize int) ([]db_models.CareTeam, error) {
	var teams []db_models.CareTeam
	err := r.db.WithContext(ctx).
		Joins("JOIN care_team_members ON care_team_members.care_team_id = care_teams.id").
		Where("care_team_members.user_id = ?", profileID).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("care_teams.created_at DESC").
		Find(&teams).Error
	return teams, err
}
