package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"wellspring/internal/models/db_models"
)

type stubProfileService struct {
	profile  *db_models.Profile
	err      error
	resolves int
}

func (s *stubProfileService) Resolve(_ context.Context, _ uuid.UUID) (*db_models.Profile, error) {
	s.resolves++
	return s.profile, s.err
}

type stubCareTeamRepo struct {
	createTeamErr error
	addMemberErr  error
	membership    *db_models.CareTeamMember
	membershipErr error
	listResult    []db_models.CareTeam
	listErr       error

	createdTeams []*db_models.CareTeam
	addedMembers []*db_models.CareTeamMember
	callOrder    []string
}

func (r *stubCareTeamRepo) CreateTeam(_ context.Context, team *db_models.CareTeam) error {
	r.callOrder = append(r.callOrder, "CreateTeam")
	if r.createTeamErr != nil {
		return r.createTeamErr
	}
	team.ID = uuid.New()
	r.createdTeams = append(r.createdTeams, team)
	return nil
}

func (r *stubCareTeamRepo) AddMember(_ context.Context, member *db_models.CareTeamMember) error {
	r.callOrder = append(r.callOrder, "AddMember")
	if r.addMemberErr != nil {
		return r.addMemberErr
	}
	member.ID = uuid.New()
	r.addedMembers = append(r.addedMembers, member)
	return nil
}

func (r *stubCareTeamRepo) GetMembership(_ context.Context, _, _ uuid.UUID) (*db_models.CareTeamMember, error) {
	return r.membership, r.membershipErr
}

func (r *stubCareTeamRepo) ListByProfile(_ context.Context, _ uuid.UUID, _, _ int) ([]db_models.CareTeam, error) {
	return r.listResult, r.listErr
}

type stubNutritionRepo struct {
	createErr  error
	listResult []db_models.NutritionLog
	listErr    error

	createdLogs []*db_models.NutritionLog
}

func (r *stubNutritionRepo) CreateLog(_ context.Context, log *db_models.NutritionLog) error {
	if r.createErr != nil {
		return r.createErr
	}
	log.ID = uuid.New()
	r.createdLogs = append(r.createdLogs, log)
	return nil
}

func (r *stubNutritionRepo) ListByTeam(_ context.Context, _ uuid.UUID, _, _ int) ([]db_models.NutritionLog, error) {
	return r.listResult, r.listErr
}

type stubVitalsRepo struct {
	createErr  error
	listResult []db_models.HealthVital
	listErr    error

	createdVitals []*db_models.HealthVital
}

func (r *stubVitalsRepo) CreateVital(_ context.Context, vital *db_models.HealthVital) error {
	if r.createErr != nil {
		return r.createErr
	}
	vital.ID = uuid.New()
	r.createdVitals = append(r.createdVitals, vital)
	return nil
}

func (r *stubVitalsRepo) ListByTeam(_ context.Context, _ uuid.UUID, _, _ int) ([]db_models.HealthVital, error) {
	return r.listResult, r.listErr
}

type stubGuard struct {
	deny     bool
	began    []string
	released []string
}

func (g *stubGuard) Begin(key string, _ time.Duration) bool {
	if g.deny {
		return false
	}
	g.began = append(g.began, key)
	return true
}

func (g *stubGuard) Release(key string) {
	g.released = append(g.released, key)
}

type recordingPublisher struct {
	events   []string
	profiles []uuid.UUID
	payloads []any
}

func (p *recordingPublisher) Publish(profileID uuid.UUID, event string, payload any) {
	p.profiles = append(p.profiles, profileID)
	p.events = append(p.events, event)
	p.payloads = append(p.payloads, payload)
}

func memberFor(teamID, profileID uuid.UUID) *db_models.CareTeamMember {
	return &db_models.CareTeamMember{CareTeamID: teamID, UserID: profileID, Role: RoleAdmin}
}

func profileFixture() *db_models.Profile {
	p := &db_models.Profile{UserID: uuid.New(), FullName: "Casey Morgan", Email: "casey@example.com"}
	p.ID = uuid.New()
	return p
}
