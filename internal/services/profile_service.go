package services

import (
	"context"

	"github.com/google/uuid"
	"wellspring/internal/models/db_models"
	"wellspring/internal/repositories"
	"wellspring/pkg/utils"
)

type ProfileServiceInterface interface {
	// Resolve maps a session identity to its profile row. Every submission
	// flow calls this first; ErrProfileNotFound aborts before any write.
	Resolve(ctx context.Context, sessionUserID uuid.UUID) (*db_models.Profile, error)
}

type ProfileService struct {
	profileRepo repositories.ProfileRepositoryInterface
}

func NewProfileService(profileRepo repositories.ProfileRepositoryInterface) ProfileServiceInterface {
	return &ProfileService{
		profileRepo: profileRepo,
	}
}

func (p *ProfileService) Resolve(ctx context.Context, sessionUserID uuid.UUID) (*db_models.Profile, error) {
	profile, err := p.profileRepo.GetByUserID(ctx, sessionUserID)
	if err != nil {
		// a failed lookup aborts the submission the same way a missing row does
		return nil, utils.ErrProfileNotFound
	}
	if profile == nil {
		return nil, utils.ErrProfileNotFound
	}
	return profile, nil
}
