package vitals_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"wellspring/internal/api/controllers"
	"wellspring/internal/repositories"
	"wellspring/internal/services"
	mem "wellspring/pkg/memcache"
)

var Module = fx.Provide(
	provideVitalsRepo, provideVitalsService, provideVitalsController,
)

func provideVitalsRepo(db *gorm.DB) repositories.VitalsRepositoryInterface {
	return repositories.NewVitalsRepository(db)
}

func provideVitalsService(
	profiles services.ProfileServiceInterface,
	teams repositories.CareTeamRepositoryInterface,
	vitals repositories.VitalsRepositoryInterface,
	guard mem.SubmissionGuard,
	events services.EventPublisher) services.VitalsServiceInterface {
	return services.NewVitalsService(profiles, teams, vitals, guard, events)
}

func provideVitalsController(vitalsService services.VitalsServiceInterface) *controllers.VitalsController {
	return controllers.NewVitalsController(vitalsService)
}
