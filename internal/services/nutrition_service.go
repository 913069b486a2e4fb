package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"wellspring/internal/models/db_models"
	"wellspring/internal/models/request_models"
	"wellspring/internal/models/response_models"
	"wellspring/internal/repositories"
	mem "wellspring/pkg/memcache"
	"wellspring/pkg/utils"
)

type NutritionServiceInterface interface {
	LogIntake(ctx context.Context, sessionUserID, teamID uuid.UUID, req request_models.LogNutritionRequest) (*response_models.NutritionLogResponse, error)
	ListLogs(ctx context.Context, sessionUserID, teamID uuid.UUID, page, pageSize int) ([]response_models.NutritionLogResponse, error)
}

type NutritionService struct {
	profiles ProfileServiceInterface
	teams    repositories.CareTeamRepositoryInterface
	logs     repositories.NutritionRepositoryInterface
	guard    mem.SubmissionGuard
	events   EventPublisher
}

func NewNutritionService(
	profiles ProfileServiceInterface,
	teams repositories.CareTeamRepositoryInterface,
	logs repositories.NutritionRepositoryInterface,
	guard mem.SubmissionGuard,
	events EventPublisher) NutritionServiceInterface {
	return &NutritionService{
		profiles: profiles,
		teams:    teams,
		logs:     logs,
		guard:    guard,
		events:   events,
	}
}

func (s *NutritionService) LogIntake(ctx context.Context, sessionUserID, teamID uuid.UUID, req request_models.LogNutritionRequest) (*response_models.NutritionLogResponse, error) {

	profile, err := s.profiles.Resolve(ctx, sessionUserID)
	if err != nil {
		return nil, err
	}

	if err := s.requireMembership(ctx, teamID, profile.ID); err != nil {
		return nil, err
	}

	log := &db_models.NutritionLog{
		CareTeamID: teamID,
		LoggedBy:   profile.ID,
		LogType:    req.LogType,
		Notes:      trimOrNil(req.Notes),
	}

	// only the active variant's fields are written; the other group's
	// columns stay NULL even if the client sent them
	switch req.LogType {
	case db_models.LogTypeFood:
		foodName := strings.TrimSpace(req.FoodName)
		if foodName == "" {
			return nil, fmt.Errorf("%w: food name is required", utils.ErrValidation)
		}
		calories, err := parseOptionalInt(req.Calories, "calories")
		if err != nil {
			return nil, err
		}
		log.FoodName = &foodName
		log.PortionSize = trimOrNil(req.PortionSize)
		log.Calories = calories
		log.MealType = trimOrNil(req.MealType)

	case db_models.LogTypeWater:
		amount, err := parseOptionalInt(req.WaterAmountML, "water amount")
		if err != nil {
			return nil, err
		}
		if amount == nil {
			return nil, fmt.Errorf("%w: water amount is required", utils.ErrValidation)
		}
		log.WaterAmountML = amount

	default:
		return nil, fmt.Errorf("%w: log type must be food or water", utils.ErrValidation)
	}

	key := "nutrition:" + profile.ID.String()
	if !s.guard.Begin(key, submissionTTL) {
		return nil, utils.ErrSubmissionInFlight
	}
	defer s.guard.Release(key)

	if err := s.logs.CreateLog(ctx, log); err != nil {
		return nil, utils.ErrDatabaseError
	}

	s.events.Publish(profile.ID, EventNutritionLogged, map[string]string{
		"care_team_id":     teamID.String(),
		"nutrition_log_id": log.ID.String(),
	})

	return toNutritionLogResponse(log), nil
}

func (s *NutritionService) ListLogs(ctx context.Context, sessionUserID, teamID uuid.UUID, page, pageSize int) ([]response_models.NutritionLogResponse, error) {

	profile, err := s.profiles.Resolve(ctx, sessionUserID)
	if err != nil {
		return nil, err
	}

	if err := s.requireMembership(ctx, teamID, profile.ID); err != nil {
		return nil, err
	}

	logs, err := s.logs.ListByTeam(ctx, teamID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.NutritionLogResponse, 0, len(logs))
	for i := range logs {
		responses = append(responses, *toNutritionLogResponse(&logs[i]))
	}
	return responses, nil
}

func (s *NutritionService) requireMembership(ctx context.Context, teamID, profileID uuid.UUID) error {
	member, err := s.teams.GetMembership(ctx, teamID, profileID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if member == nil {
		return utils.ErrCareTeamNotFound
	}
	return nil
}

func toNutritionLogResponse(log *db_models.NutritionLog) *response_models.NutritionLogResponse {
	return &response_models.NutritionLogResponse{
		ID:            log.ID.String(),
		CareTeamID:    log.CareTeamID.String(),
		LoggedBy:      log.LoggedBy.String(),
		LogType:       log.LogType,
		FoodName:      log.FoodName,
		PortionSize:   log.PortionSize,
		Calories:      log.Calories,
		MealType:      log.MealType,
		WaterAmountML: log.WaterAmountML,
		Notes:         log.Notes,
		CreatedAt:     utils.FormatUnixSeconds(log.CreatedAt),
	}
}

// parseOptionalInt maps empty text to nil, never zero.
func parseOptionalInt(s, field string) (*int, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a whole number", utils.ErrValidation, field)
	}
	return &n, nil
}
