package controllers_fx

import (
	"go.uber.org/fx"
	"globetrotter/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewGeoController),
	fx.Provide(controllers.NewTripController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewDashboardController),
	fx.Provide(controllers.NewHealthController))
