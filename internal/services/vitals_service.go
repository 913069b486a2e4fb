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

type VitalsServiceInterface interface {
	RecordVital(ctx context.Context, sessionUserID, teamID uuid.UUID, req request_models.RecordVitalRequest) (*response_models.HealthVitalResponse, error)
	ListVitals(ctx context.Context, sessionUserID, teamID uuid.UUID, page, pageSize int) ([]response_models.HealthVitalResponse, error)
	ListVitalTypes() []response_models.VitalTypeResponse
}

type VitalsService struct {
	profiles ProfileServiceInterface
	teams    repositories.CareTeamRepositoryInterface
	vitals   repositories.VitalsRepositoryInterface
	guard    mem.SubmissionGuard
	events   EventPublisher
}

func NewVitalsService(
	profiles ProfileServiceInterface,
	teams repositories.CareTeamRepositoryInterface,
	vitals repositories.VitalsRepositoryInterface,
	guard mem.SubmissionGuard,
	events EventPublisher) VitalsServiceInterface {
	return &VitalsService{
		profiles: profiles,
		teams:    teams,
		vitals:   vitals,
		guard:    guard,
		events:   events,
	}
}

func (s *VitalsService) RecordVital(ctx context.Context, sessionUserID, teamID uuid.UUID, req request_models.RecordVitalRequest) (*response_models.HealthVitalResponse, error) {

	vitalType, ok := LookupVitalType(req.VitalType)
	if !ok {
		return nil, utils.ErrUnknownVitalType
	}

	unit := strings.TrimSpace(req.Unit)
	if unit == "" {
		unit = vitalType.DefaultUnit()
	} else if !vitalType.UnitAllowed(unit) {
		return nil, utils.ErrUnitNotAllowed
	}

	value, diastolic, err := parseVitalValue(vitalType.Key, req.Value)
	if err != nil {
		return nil, err
	}

	profile, err := s.profiles.Resolve(ctx, sessionUserID)
	if err != nil {
		return nil, err
	}

	if err := s.requireMembership(ctx, teamID, profile.ID); err != nil {
		return nil, err
	}

	key := "vitals:" + profile.ID.String()
	if !s.guard.Begin(key, submissionTTL) {
		return nil, utils.ErrSubmissionInFlight
	}
	defer s.guard.Release(key)

	vital := &db_models.HealthVital{
		CareTeamID:     teamID,
		RecordedBy:     profile.ID,
		VitalType:      vitalType.Key,
		Value:          value,
		DiastolicValue: diastolic,
		Unit:           unit,
		Notes:          trimOrNil(req.Notes),
	}
	if err := s.vitals.CreateVital(ctx, vital); err != nil {
		return nil, utils.ErrDatabaseError
	}

	s.events.Publish(profile.ID, EventVitalRecorded, map[string]string{
		"care_team_id": teamID.String(),
		"vital_id":     vital.ID.String(),
	})

	return toHealthVitalResponse(vital), nil
}

func (s *VitalsService) ListVitals(ctx context.Context, sessionUserID, teamID uuid.UUID, page, pageSize int) ([]response_models.HealthVitalResponse, error) {

	profile, err := s.profiles.Resolve(ctx, sessionUserID)
	if err != nil {
		return nil, err
	}

	if err := s.requireMembership(ctx, teamID, profile.ID); err != nil {
		return nil, err
	}

	vitals, err := s.vitals.ListByTeam(ctx, teamID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.HealthVitalResponse, 0, len(vitals))
	for i := range vitals {
		responses = append(responses, *toHealthVitalResponse(&vitals[i]))
	}
	return responses, nil
}

func (s *VitalsService) ListVitalTypes() []response_models.VitalTypeResponse {
	types := VitalTypes()
	responses := make([]response_models.VitalTypeResponse, 0, len(types))
	for _, vt := range types {
		responses = append(responses, response_models.VitalTypeResponse{
			Key:         vt.Key,
			Label:       vt.Label,
			Units:       vt.Units,
			DefaultUnit: vt.DefaultUnit(),
		})
	}
	return responses
}

func (s *VitalsService) requireMembership(ctx context.Context, teamID, profileID uuid.UUID) error {
	member, err := s.teams.GetMembership(ctx, teamID, profileID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if member == nil {
		return utils.ErrCareTeamNotFound
	}
	return nil
}

// parseVitalValue reads "systolic/diastolic" for blood pressure and a single
// float for everything else. Slash input on a non-BP type is rejected rather
// than silently truncated.
func parseVitalValue(vitalType, raw string) (float64, *float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, nil, fmt.Errorf("%w: value is required", utils.ErrValidation)
	}

	if vitalType == VitalBloodPressure {
		parts := strings.SplitN(trimmed, "/", 2)
		if len(parts) != 2 {
			return 0, nil, fmt.Errorf("%w: blood pressure must be entered as systolic/diastolic, e.g. 120/80", utils.ErrValidation)
		}
		systolic, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return 0, nil, fmt.Errorf("%w: systolic value must be a number", utils.ErrValidation)
		}
		diastolic, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return 0, nil, fmt.Errorf("%w: diastolic value must be a number", utils.ErrValidation)
		}
		return systolic, &diastolic, nil
	}

	if strings.Contains(trimmed, "/") {
		return 0, nil, fmt.Errorf("%w: value must be a single number", utils.ErrValidation)
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: value must be a number", utils.ErrValidation)
	}
	return value, nil, nil
}

func toHealthVitalResponse(vital *db_models.HealthVital) *response_models.HealthVitalResponse {
	return &response_models.HealthVitalResponse{
		ID:             vital.ID.String(),
		CareTeamID:     vital.CareTeamID.String(),
		RecordedBy:     vital.RecordedBy.String(),
		VitalType:      vital.VitalType,
		Value:          vital.Value,
		DiastolicValue: vital.DiastolicValue,
		Unit:           vital.Unit,
		Notes:          vital.Notes,
		CreatedAt:      utils.FormatUnixSeconds(vital.CreatedAt),
	}
}
