package geo_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"globetrotter/internal/repositories"
	"globetrotter/internal/services"
	mem "globetrotter/pkg/memcache"
)

var Module = fx.Provide(
	NewGeoService, NewGeoRepo)

func NewGeoService(repo repositories.GeoRepository, store mem.Store) services.GeoServiceInterface {
	return services.NewGeoService(repo, store)
}

func NewGeoRepo(db *gorm.DB) repositories.GeoRepository {
	return repositories.NewGeoRepository(db)
}
