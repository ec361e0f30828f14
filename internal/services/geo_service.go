package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"globetrotter/internal/repositories"
	mem "globetrotter/pkg/memcache"
	"globetrotter/pkg/utils"
)

// ReferenceTTL bounds how long state and city lists stay cached. The tables
// only change when the seeder runs.
const ReferenceTTL = time.Hour

type GeoServiceInterface interface {
	ListStates(ctx context.Context) ([]string, error)
	ListCitiesByState(ctx context.Context, state string) ([]string, error)
}

type GeoService struct {
	geoRepo repositories.GeoRepository
	store   mem.Store
}

func NewGeoService(geoRepo repositories.GeoRepository, store mem.Store) GeoServiceInterface {
	return &GeoService{
		geoRepo: geoRepo,
		store:   store,
	}
}

func (g *GeoService) ListStates(ctx context.Context) ([]string, error) {
	key := mem.ReferencePrefix + "states"
	if names, ok := g.cached(ctx, key); ok {
		return names, nil
	}

	names, err := g.geoRepo.ListStateNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	g.remember(ctx, key, names)
	return names, nil
}

func (g *GeoService) ListCitiesByState(ctx context.Context, state string) ([]string, error) {
	state = strings.TrimSpace(state)
	if state == "" {
		return []string{}, nil
	}

	key := mem.ReferencePrefix + "cities:" + state
	if names, ok := g.cached(ctx, key); ok {
		return names, nil
	}

	names, err := g.geoRepo.ListCityNamesByState(ctx, state)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	// Unknown states are not cached so arbitrary path values cannot grow the store.
	if len(names) > 0 {
		g.remember(ctx, key, names)
	}
	return names, nil
}

func (g *GeoService) cached(ctx context.Context, key string) ([]string, bool) {
	raw, ok, err := g.store.Get(ctx, key)
	if err != nil {
		zap.L().Warn("reference cache read failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var names []string
	if err := json.Unmarshal([]byte(raw), &names); err != nil {
		zap.L().Warn("reference cache entry corrupt", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return names, true
}

func (g *GeoService) remember(ctx context.Context, key string, names []string) {
	raw, err := json.Marshal(names)
	if err != nil {
		return
	}
	if err := g.store.Set(ctx, key, string(raw), ReferenceTTL); err != nil {
		zap.L().Warn("reference cache write failed", zap.String("key", key), zap.Error(err))
	}
}
