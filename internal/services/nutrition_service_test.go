package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"wellspring/internal/models/db_models"
	"wellspring/internal/models/request_models"
	"wellspring/pkg/utils"
)

type nutritionFixture struct {
	profile *db_models.Profile
	teamID  uuid.UUID
	teams   *stubCareTeamRepo
	logs    *stubNutritionRepo
	guard   *stubGuard
	events  *recordingPublisher
	svc     NutritionServiceInterface
}

func newNutritionFixture() *nutritionFixture {
	profile := profileFixture()
	teamID := uuid.New()
	f := &nutritionFixture{
		profile: profile,
		teamID:  teamID,
		teams:   &stubCareTeamRepo{membership: memberFor(teamID, profile.ID)},
		logs:    &stubNutritionRepo{},
		guard:   &stubGuard{},
		events:  &recordingPublisher{},
	}
	f.svc = NewNutritionService(&stubProfileService{profile: profile}, f.teams, f.logs, f.guard, f.events)
	return f
}

func TestLogIntake_WaterRecordShape(t *testing.T) {
	f := newNutritionFixture()

	resp, err := f.svc.LogIntake(context.Background(), f.profile.UserID, f.teamID, request_models.LogNutritionRequest{
		LogType:       "water",
		WaterAmountML: "250",
		Notes:         "",
	})
	require.NoError(t, err)
	require.Len(t, f.logs.createdLogs, 1)

	log := f.logs.createdLogs[0]
	assert.Equal(t, "water", log.LogType)
	require.NotNil(t, log.WaterAmountML)
	assert.Equal(t, 250, *log.WaterAmountML)
	assert.Nil(t, log.Notes)
	assert.Nil(t, log.FoodName)
	assert.Nil(t, log.PortionSize)
	assert.Nil(t, log.Calories)
	assert.Nil(t, log.MealType)
	assert.Equal(t, f.profile.ID, log.LoggedBy)
	assert.Equal(t, f.teamID, log.CareTeamID)

	assert.Equal(t, []string{EventNutritionLogged}, f.events.events)
	require.NotNil(t, resp.WaterAmountML)
	assert.Equal(t, 250, *resp.WaterAmountML)
}

func TestLogIntake_FoodNeverCarriesWaterFields(t *testing.T) {
	f := newNutritionFixture()

	// a water amount smuggled into a food submission must not be written
	_, err := f.svc.LogIntake(context.Background(), f.profile.UserID, f.teamID, request_models.LogNutritionRequest{
		LogType:       "food",
		FoodName:      "Oatmeal",
		PortionSize:   "1 bowl",
		Calories:      "150",
		MealType:      "breakfast",
		WaterAmountML: "999",
	})
	require.NoError(t, err)
	require.Len(t, f.logs.createdLogs, 1)

	log := f.logs.createdLogs[0]
	assert.Nil(t, log.WaterAmountML)
	require.NotNil(t, log.FoodName)
	assert.Equal(t, "Oatmeal", *log.FoodName)
	require.NotNil(t, log.Calories)
	assert.Equal(t, 150, *log.Calories)
}

func TestLogIntake_EmptyCaloriesBecomesNull(t *testing.T) {
	f := newNutritionFixture()

	_, err := f.svc.LogIntake(context.Background(), f.profile.UserID, f.teamID, request_models.LogNutritionRequest{
		LogType:  "food",
		FoodName: "Toast",
		Calories: "",
	})
	require.NoError(t, err)
	assert.Nil(t, f.logs.createdLogs[0].Calories)
}

func TestLogIntake_NonNumericCaloriesRejected(t *testing.T) {
	f := newNutritionFixture()

	_, err := f.svc.LogIntake(context.Background(), f.profile.UserID, f.teamID, request_models.LogNutritionRequest{
		LogType:  "food",
		FoodName: "Toast",
		Calories: "lots",
	})
	require.ErrorIs(t, err, utils.ErrValidation)
	assert.Empty(t, f.logs.createdLogs)
}

func TestLogIntake_FoodNameRequired(t *testing.T) {
	f := newNutritionFixture()

	_, err := f.svc.LogIntake(context.Background(), f.profile.UserID, f.teamID, request_models.LogNutritionRequest{
		LogType:  "food",
		FoodName: "   ",
	})
	require.ErrorIs(t, err, utils.ErrValidation)
	assert.Empty(t, f.logs.createdLogs)
}

func TestLogIntake_WaterAmountRequired(t *testing.T) {
	f := newNutritionFixture()

	_, err := f.svc.LogIntake(context.Background(), f.profile.UserID, f.teamID, request_models.LogNutritionRequest{
		LogType:       "water",
		WaterAmountML: "",
	})
	require.ErrorIs(t, err, utils.ErrValidation)
	assert.Empty(t, f.logs.createdLogs)
}

func TestLogIntake_ProfileNotFoundBlocksWrite(t *testing.T) {
	f := newNutritionFixture()
	f.svc = NewNutritionService(&stubProfileService{err: utils.ErrProfileNotFound}, f.teams, f.logs, f.guard, f.events)

	_, err := f.svc.LogIntake(context.Background(), uuid.New(), f.teamID, request_models.LogNutritionRequest{
		LogType:       "water",
		WaterAmountML: "250",
	})
	require.ErrorIs(t, err, utils.ErrProfileNotFound)
	assert.Empty(t, f.logs.createdLogs)
	assert.Empty(t, f.events.events)
}

func TestLogIntake_NonMemberRejected(t *testing.T) {
	f := newNutritionFixture()
	f.teams.membership = nil

	_, err := f.svc.LogIntake(context.Background(), f.profile.UserID, f.teamID, request_models.LogNutritionRequest{
		LogType:       "water",
		WaterAmountML: "250",
	})
	require.ErrorIs(t, err, utils.ErrCareTeamNotFound)
	assert.Empty(t, f.logs.createdLogs)
}

func TestLogIntake_InsertFailureReleasesGuard(t *testing.T) {
	f := newNutritionFixture()
	f.logs.createErr = errors.New("insert failed")

	_, err := f.svc.LogIntake(context.Background(), f.profile.UserID, f.teamID, request_models.LogNutritionRequest{
		LogType:       "water",
		WaterAmountML: "250",
	})
	require.ErrorIs(t, err, utils.ErrDatabaseError)
	assert.Empty(t, f.events.events)
	assert.Len(t, f.guard.released, 1)
}
