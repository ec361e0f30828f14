package repositories

import (
	"context"

	"gorm.io/gorm"
	"globetrotter/internal/models/db_models"
)

type GeoRepository interface {
	ListStateNames(ctx context.Context) ([]string, error)
	ListCityNamesByState(ctx context.Context, state string) ([]string, error)
	CountStates(ctx context.Context) (int64, error)
	CountCities(ctx context.Context) (int64, error)
	InsertStates(ctx context.Context, states []db_models.State) error
	InsertCities(ctx context.Context, cities []db_models.City) error
}

type geoRepository struct {
	db *gorm.DB
}

func NewGeoRepository(db *gorm.DB) GeoRepository {
	return &geoRepository{db: db}
}

func (g *geoRepository) ListStateNames(ctx context.Context) ([]string, error) {
	names := []string{}
	err := g.db.WithContext(ctx).
		Model(&db_models.State{}).
		Order("name").
		Pluck("name", &names).Error
	return names, err
}

func (g *geoRepository) ListCityNamesByState(ctx context.Context, state string) ([]string, error) {
	names := []string{}
	err := g.db.WithContext(ctx).
		Model(&db_models.City{}).
		Where("state = ?", state).
		Order("name").
		Pluck("name", &names).Error
	return names, err
}

func (g *geoRepository) CountStates(ctx context.Context) (int64, error) {
	var n int64
	err := g.db.WithContext(ctx).Model(&db_models.State{}).Count(&n).Error
	return n, err
}

func (g *geoRepository) CountCities(ctx context.Context) (int64, error) {
	var n int64
	err := g.db.WithContext(ctx).Model(&db_models.City{}).Count(&n).Error
	return n, err
}

func (g *geoRepository) InsertStates(ctx context.Context, states []db_models.State) error {
	if len(states) == 0 {
		return nil
	}
	return g.db.WithContext(ctx).CreateInBatches(&states, 100).Error
}

func (g *geoRepository) InsertCities(ctx context.Context, cities []db_models.City) error {
	if len(cities) == 0 {
		return nil
	}
	return g.db.WithContext(ctx).CreateInBatches(&cities, 100).Error
}
