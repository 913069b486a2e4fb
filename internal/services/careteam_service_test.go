package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"wellspring/internal/models/request_models"
	"wellspring/pkg/utils"
)

func newCareTeamService(profiles *stubProfileService, repo *stubCareTeamRepo, guard *stubGuard, events *recordingPublisher) CareTeamServiceInterface {
	return NewCareTeamService(profiles, repo, guard, events)
}

func TestCreateCareTeam_Success(t *testing.T) {
	profile := profileFixture()
	profiles := &stubProfileService{profile: profile}
	repo := &stubCareTeamRepo{}
	guard := &stubGuard{}
	events := &recordingPublisher{}
	svc := newCareTeamService(profiles, repo, guard, events)

	resp, err := svc.CreateCareTeam(context.Background(), profile.UserID, request_models.CreateCareTeamRequest{
		Name:              "  Mom's Care Circle  ",
		CareRecipientName: " Eleanor ",
		Description:       "   ",
	})
	require.NoError(t, err)

	require.Equal(t, []string{"CreateTeam", "AddMember"}, repo.callOrder)
	require.Len(t, repo.createdTeams, 1)
	require.Len(t, repo.addedMembers, 1)

	team := repo.createdTeams[0]
	member := repo.addedMembers[0]
	assert.Equal(t, "Mom's Care Circle", team.Name)
	assert.Equal(t, "Eleanor", team.CareRecipientName)
	assert.Nil(t, team.Description)
	assert.Equal(t, profile.ID, team.CreatedBy)
	assert.Equal(t, team.ID, member.CareTeamID)
	assert.Equal(t, profile.ID, member.UserID)
	assert.Equal(t, RoleAdmin, member.Role)

	assert.Equal(t, team.ID.String(), resp.ID)
	assert.Equal(t, RoleAdmin, resp.Role)

	require.Equal(t, []string{EventCareTeamCreated}, events.events)
	assert.Equal(t, []uuid.UUID{profile.ID}, events.profiles)

	assert.Len(t, guard.released, 1)
}

func TestCreateCareTeam_BlankRequiredFields(t *testing.T) {
	profiles := &stubProfileService{profile: profileFixture()}
	repo := &stubCareTeamRepo{}
	svc := newCareTeamService(profiles, repo, &stubGuard{}, &recordingPublisher{})

	_, err := svc.CreateCareTeam(context.Background(), uuid.New(), request_models.CreateCareTeamRequest{
		Name:              "   ",
		CareRecipientName: "Eleanor",
	})
	require.ErrorIs(t, err, utils.ErrValidation)
	assert.Zero(t, profiles.resolves)
	assert.Empty(t, repo.callOrder)
}

func TestCreateCareTeam_ProfileNotFoundBlocksAllWrites(t *testing.T) {
	profiles := &stubProfileService{err: utils.ErrProfileNotFound}
	repo := &stubCareTeamRepo{}
	events := &recordingPublisher{}
	svc := newCareTeamService(profiles, repo, &stubGuard{}, events)

	_, err := svc.CreateCareTeam(context.Background(), uuid.New(), request_models.CreateCareTeamRequest{
		Name:              "Circle",
		CareRecipientName: "Eleanor",
	})
	require.ErrorIs(t, err, utils.ErrProfileNotFound)
	assert.Empty(t, repo.callOrder)
	assert.Empty(t, events.events)
}

func TestCreateCareTeam_MemberInsertFailureKeepsTeam(t *testing.T) {
	profile := profileFixture()
	profiles := &stubProfileService{profile: profile}
	repo := &stubCareTeamRepo{addMemberErr: errors.New("insert failed")}
	guard := &stubGuard{}
	events := &recordingPublisher{}
	svc := newCareTeamService(profiles, repo, guard, events)

	_, err := svc.CreateCareTeam(context.Background(), profile.UserID, request_models.CreateCareTeamRequest{
		Name:              "Circle",
		CareRecipientName: "Eleanor",
	})
	require.ErrorIs(t, err, utils.ErrDatabaseError)

	// the team row stays persisted and no compensating call is made
	require.Equal(t, []string{"CreateTeam", "AddMember"}, repo.callOrder)
	assert.Len(t, repo.createdTeams, 1)
	assert.Empty(t, events.events)
	assert.Len(t, guard.released, 1)
}

func TestCreateCareTeam_RejectsConcurrentSubmission(t *testing.T) {
	profile := profileFixture()
	profiles := &stubProfileService{profile: profile}
	repo := &stubCareTeamRepo{}
	svc := newCareTeamService(profiles, repo, &stubGuard{deny: true}, &recordingPublisher{})

	_, err := svc.CreateCareTeam(context.Background(), profile.UserID, request_models.CreateCareTeamRequest{
		Name:              "Circle",
		CareRecipientName: "Eleanor",
	})
	require.ErrorIs(t, err, utils.ErrSubmissionInFlight)
	assert.Empty(t, repo.callOrder)
}

func TestListCareTeams(t *testing.T) {
	profile := profileFixture()
	profiles := &stubProfileService{profile: profile}
	repo := &stubCareTeamRepo{}
	svc := newCareTeamService(profiles, repo, &stubGuard{}, &recordingPublisher{})

	teams, err := svc.ListCareTeams(context.Background(), profile.UserID, 1, 20)
	require.NoError(t, err)
	assert.Empty(t, teams)
}
