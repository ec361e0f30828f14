package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"globetrotter/internal/models/db_models"
	"globetrotter/internal/models/request_models"
	"globetrotter/internal/repositories"
	"globetrotter/internal/services"
	"globetrotter/internal/testsupport"
	mem "globetrotter/pkg/memcache"
	"globetrotter/pkg/utils"
)

func TestSeedService_IsIdempotent(t *testing.T) {
	db := testsupport.NewDB(t)
	geoRepo := repositories.NewGeoRepository(db)
	accountRepo := repositories.NewAccountRepository(db)
	seeder := services.NewSeedService(geoRepo, accountRepo)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		require.NoError(t, seeder.SeedReferenceData(ctx))
		require.NoError(t, seeder.EnsureAdmin(ctx, "admin@globetrotter.com", "admin"))
	}

	states, err := geoRepo.CountStates(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 37, states)

	cities, err := geoRepo.CountCities(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 141, cities)

	var admins int64
	require.NoError(t, db.Model(&db_models.Account{}).Where("email = ?", "admin@globetrotter.com").Count(&admins).Error)
	assert.EqualValues(t, 1, admins)
}

func TestSeedService_AdminCanLogIn(t *testing.T) {
	db := testsupport.NewDB(t)
	accountRepo := repositories.NewAccountRepository(db)
	ctx := context.Background()

	require.NoError(t, services.NewSeedService(repositories.NewGeoRepository(db), accountRepo).
		EnsureAdmin(ctx, "Admin@GlobeTrotter.com", "admin"))

	jwt := utils.NewJWTManager("secret", time.Hour)
	accounts := services.NewAccountService(accountRepo, jwt, mem.NewMemoryStore())

	result, err := accounts.Login(request_models.LoginRequest{Email: "admin@globetrotter.com", Password: "admin"}, ctx)
	require.NoError(t, err)
	assert.Equal(t, db_models.RoleAdmin, result.User.Role)

	claims, err := jwt.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, db_models.RoleAdmin, claims.Role)
}
