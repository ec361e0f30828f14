package repositories_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dbm "globetrotter/internal/models/db_models"
	"globetrotter/internal/repositories"
	"globetrotter/internal/testsupport"
)

func TestGeoRepository(t *testing.T) {
	db := testsupport.NewDB(t)
	repo := repositories.NewGeoRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.InsertStates(ctx, []dbm.State{{Name: "Kerala"}, {Name: "Goa"}}))
	require.NoError(t, repo.InsertCities(ctx, []dbm.City{
		{Name: "Munnar", StateName: "Kerala"},
		{Name: "Kochi", StateName: "Kerala"},
		{Name: "Panaji", StateName: "Goa"},
	}))

	states, err := repo.ListStateNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Goa", "Kerala"}, states)

	cities, err := repo.ListCityNamesByState(ctx, "Kerala")
	require.NoError(t, err)
	assert.Equal(t, []string{"Kochi", "Munnar"}, cities)

	none, err := repo.ListCityNamesByState(ctx, "Atlantis")
	require.NoError(t, err)
	assert.Empty(t, none)

	n, err := repo.CountCities(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
}
