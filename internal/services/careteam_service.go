package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"wellspring/internal/models/db_models"
	"wellspring/internal/models/request_models"
	"wellspring/internal/models/response_models"
	"wellspring/internal/repositories"
	mem "wellspring/pkg/memcache"
	"wellspring/pkg/utils"
)

const RoleAdmin = "admin"

type CareTeamServiceInterface interface {
	CreateCareTeam(ctx context.Context, sessionUserID uuid.UUID, req request_models.CreateCareTeamRequest) (*response_models.CareTeamResponse, error)
	ListCareTeams(ctx context.Context, sessionUserID uuid.UUID, page, pageSize int) ([]response_models.CareTeamResponse, error)
}

type CareTeamService struct {
	profiles ProfileServiceInterface
	teams    repositories.CareTeamRepositoryInterface
	guard    mem.SubmissionGuard
	events   EventPublisher
}

func NewCareTeamService(
	profiles ProfileServiceInterface,
	teams repositories.CareTeamRepositoryInterface,
	guard mem.SubmissionGuard,
	events EventPublisher) CareTeamServiceInterface {
	return &CareTeamService{
		profiles: profiles,
		teams:    teams,
		guard:    guard,
		events:   events,
	}
}

func (s *CareTeamService) CreateCareTeam(ctx context.Context, sessionUserID uuid.UUID, req request_models.CreateCareTeamRequest) (*response_models.CareTeamResponse, error) {

	name := strings.TrimSpace(req.Name)
	recipient := strings.TrimSpace(req.CareRecipientName)
	if name == "" || recipient == "" {
		return nil, fmt.Errorf("%w: team name and care recipient name are required", utils.ErrValidation)
	}

	profile, err := s.profiles.Resolve(ctx, sessionUserID)
	if err != nil {
		return nil, err
	}

	key := "careteam:" + profile.ID.String()
	if !s.guard.Begin(key, submissionTTL) {
		return nil, utils.ErrSubmissionInFlight
	}
	defer s.guard.Release(key)

	team := &db_models.CareTeam{
		Name:              name,
		Description:       trimOrNil(req.Description),
		CareRecipientName: recipient,
		CreatedBy:         profile.ID,
	}
	if err := s.teams.CreateTeam(ctx, team); err != nil {
		return nil, utils.ErrDatabaseError
	}

	member := &db_models.CareTeamMember{
		CareTeamID: team.ID,
		UserID:     profile.ID,
		Role:       RoleAdmin,
	}
	if err := s.teams.AddMember(ctx, member); err != nil {
		// the team row stays persisted; the client sees a generic failure
		// and may retry, which recreates only the membership
		zap.S().Errorw("care team created without admin membership",
			"care_team_id", team.ID, "profile_id", profile.ID, "error", err)
		return nil, utils.ErrDatabaseError
	}

	s.events.Publish(profile.ID, EventCareTeamCreated, map[string]string{
		"care_team_id": team.ID.String(),
	})

	return toCareTeamResponse(team, RoleAdmin), nil
}

func (s *CareTeamService) ListCareTeams(ctx context.Context, sessionUserID uuid.UUID, page, pageSize int) ([]response_models.CareTeamResponse, error) {

	profile, err := s.profiles.Resolve(ctx, sessionUserID)
	if err != nil {
		return nil, err
	}

	teams, err := s.teams.ListByProfile(ctx, profile.ID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.CareTeamResponse, 0, len(teams))
	for i := range teams {
		responses = append(responses, *toCareTeamResponse(&teams[i], ""))
	}
	return responses, nil
}

func toCareTeamResponse(team *db_models.CareTeam, role string) *response_models.CareTeamResponse {
	return &response_models.CareTeamResponse{
		ID:                team.ID.String(),
		Name:              team.Name,
		Description:       team.Description,
		CareRecipientName: team.CareRecipientName,
		CreatedBy:         team.CreatedBy.String(),
		Role:              role,
		CreatedAt:         utils.FormatUnixSeconds(team.CreatedAt),
	}
}

// trimOrNil maps blank optional text to NULL rather than an empty string.
func trimOrNil(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
