package careteam_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"wellspring/internal/api/controllers"
	"wellspring/internal/repositories"
	"wellspring/internal/services"
	mem "wellspring/pkg/memcache"
)

var Module = fx.Provide(
	provideCareTeamRepo, provideCareTeamService, provideCareTeamController,
)

func provideCareTeamRepo(db *gorm.DB) repositories.CareTeamRepositoryInterface {
	return repositories.NewCareTeamRepository(db)
}

func provideCareTeamService(
	profiles services.ProfileServiceInterface,
	teams repositories.CareTeamRepositoryInterface,
	guard mem.SubmissionGuard,
	events services.EventPublisher) services.CareTeamServiceInterface {
	return services.NewCareTeamService(profiles, teams, guard, events)
}

func provideCareTeamController(careTeamService services.CareTeamServiceInterface) *controllers.CareTeamController {
	return controllers.NewCareTeamController(careTeamService)
}
