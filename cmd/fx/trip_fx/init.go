package trip_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"globetrotter/internal/repositories"
	"globetrotter/internal/services"
)

var Module = fx.Provide(provideTripRepo, provideTripService)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(tripRepo repositories.TripRepository, itineraryRepo repositories.ItineraryRepository) services.TripServiceInterface {
	return services.NewTripService(tripRepo, itineraryRepo)
}
