package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dbm "globetrotter/internal/models/db_models"
	"globetrotter/internal/repositories"
	"globetrotter/internal/testsupport"
)

func budget(v float64) *float64 { return &v }

func TestItineraryRepository_ReplaceForTrip(t *testing.T) {
	db := testsupport.NewDB(t)
	repo := repositories.NewItineraryRepository(db)
	ctx := context.Background()

	owner := testsupport.CreateAccount(t, db, "owner@x.in")
	trip := testsupport.CreateTrip(t, db, owner, "Rajasthan", 0)
	otherTrip := testsupport.CreateTrip(t, db, owner, "Sikkim", 0)

	require.NoError(t, repo.ReplaceForTrip(ctx, otherTrip.ID, []dbm.ItinerarySection{
		{SectionDate: testsupport.Day(2025, time.March, 1), Details: "Gangtok"},
	}))

	require.NoError(t, repo.ReplaceForTrip(ctx, trip.ID, []dbm.ItinerarySection{
		{SectionDate: testsupport.Day(2025, time.January, 12), Budget: budget(2500), Details: "Jodhpur"},
		{SectionDate: testsupport.Day(2025, time.January, 10), Budget: budget(1200.5), Details: "Jaipur"},
		{SectionDate: testsupport.Day(2025, time.January, 11), Details: "Pushkar"},
	}))

	first, err := repo.ListByTrip(ctx, trip.ID)
	require.NoError(t, err)
	require.Len(t, first, 3)
	assert.Equal(t, "Jaipur", first[0].Details, "sections come back ordered by date")
	assert.Equal(t, "Pushkar", first[1].Details)
	assert.Nil(t, first[1].Budget)
	require.NotNil(t, first[0].Budget)
	assert.InDelta(t, 1200.5, *first[0].Budget, 0.001)

	require.NoError(t, repo.ReplaceForTrip(ctx, trip.ID, []dbm.ItinerarySection{
		{SectionDate: testsupport.Day(2025, time.January, 13), Details: "Udaipur"},
	}))

	second, err := repo.ListByTrip(ctx, trip.ID)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "Udaipur", second[0].Details)
	for _, old := range first {
		assert.NotEqual(t, old.ID, second[0].ID)
	}

	untouched, err := repo.ListByTrip(ctx, otherTrip.ID)
	require.NoError(t, err)
	assert.Len(t, untouched, 1, "other trips keep their sections")

	require.NoError(t, repo.ReplaceForTrip(ctx, trip.ID, nil))
	cleared, err := repo.ListByTrip(ctx, trip.ID)
	require.NoError(t, err)
	assert.Empty(t, cleared)
}
