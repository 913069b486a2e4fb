package nutrition_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"wellspring/internal/api/controllers"
	"wellspring/internal/repositories"
	"wellspring/internal/services"
	mem "wellspring/pkg/memcache"
)

var Module = fx.Provide(
	provideNutritionRepo, provideNutritionService, provideNutritionController,
)

func provideNutritionRepo(db *gorm.DB) repositories.NutritionRepositoryInterface {
	return repositories.NewNutritionRepository(db)
}

func provideNutritionService(
	profiles services.ProfileServiceInterface,
	teams repositories.CareTeamRepositoryInterface,
	logs repositories.NutritionRepositoryInterface,
	guard mem.SubmissionGuard,
	events services.EventPublisher) services.NutritionServiceInterface {
	return services.NewNutritionService(profiles, teams, logs, guard, events)
}

func provideNutritionController(nutritionService services.NutritionServiceInterface) *controllers.NutritionController {
	return controllers.NewNutritionController(nutritionService)
}
