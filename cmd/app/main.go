package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"wellspring/cmd/fx/careteam_fx"
	"wellspring/cmd/fx/db_fx"
	"wellspring/cmd/fx/memcache_fx"
	"wellspring/cmd/fx/nutrition_fx"
	"wellspring/cmd/fx/profile_fx"
	"wellspring/cmd/fx/realtime_fx"
	"wellspring/cmd/fx/vitals_fx"
	"wellspring/internal/api/controllers"
	"wellspring/pkg/middleware"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	app := fx.New(
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),

		db_fx.Module,
		memcache_fx.Module,
		profile_fx.Module,
		careteam_fx.Module,
		nutrition_fx.Module,
		vitals_fx.Module,
		realtime_fx.Module,

		fx.Provide(controllers.NewLandingController),
		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				zap.S().Infow("starting HTTP server", "port", port)
				if err := engine.Run(":" + port); err != nil {
					zap.S().Fatalw("failed to start server", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			zap.S().Info("stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	landingController *controllers.LandingController,
	careTeamController *controllers.CareTeamController,
	nutritionController *controllers.NutritionController,
	vitalsController *controllers.VitalsController,
	realtimeController *controllers.RealtimeController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, landingController, careTeamController, nutritionController, vitalsController, realtimeController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	landingController *controllers.LandingController,
	careTeamController *controllers.CareTeamController,
	nutritionController *controllers.NutritionController,
	vitalsController *controllers.VitalsController,
	realtimeController *controllers.RealtimeController) {

	r.GET("/", landingController.Home)
	r.GET("/vitals/types", vitalsController.ListVitalTypes)

	authed := r.Group("")
	authed.Use(middleware.JWTAuthMiddleware())

	authed.GET("/ws", realtimeController.Connect)

	teams := authed.Group("/care-teams")
	teams.POST("", careTeamController.CreateCareTeam)
	teams.GET("", careTeamController.ListCareTeams)
	teams.POST("/:teamId/nutrition-logs", nutritionController.LogIntake)
	teams.GET("/:teamId/nutrition-logs", nutritionController.ListLogs)
	teams.POST("/:teamId/vitals", vitalsController.RecordVital)
	teams.GET("/:teamId/vitals", vitalsController.ListVitals)
}
