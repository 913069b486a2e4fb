package realtime_fx

import (
	"go.uber.org/fx"
	"wellspring/internal/api/controllers"
	"wellspring/internal/realtime"
	"wellspring/internal/services"
)

var Module = fx.Provide(
	provideHub, provideEventPublisher, provideRealtimeController,
)

func provideHub() *realtime.Hub {
	return realtime.NewHub()
}

func provideEventPublisher(hub *realtime.Hub) services.EventPublisher {
	return hub
}

func provideRealtimeController(profileService services.ProfileServiceInterface, hub *realtime.Hub) *controllers.RealtimeController {
	return controllers.NewRealtimeController(profileService, hub)
}
