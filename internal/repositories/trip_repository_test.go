package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dbm "globetrotter/internal/models/db_models"
	"globetrotter/internal/repositories"
	"globetrotter/internal/testsupport"
)

func TestTripRepository_ListByUserNewestFirst(t *testing.T) {
	db := testsupport.NewDB(t)
	repo := repositories.NewTripRepository(db)
	ctx := context.Background()

	owner := testsupport.CreateAccount(t, db, "owner@x.in")
	other := testsupport.CreateAccount(t, db, "other@x.in")

	testsupport.CreateTrip(t, db, owner, "old", 1000)
	testsupport.CreateTrip(t, db, owner, "new", 3000)
	testsupport.CreateTrip(t, db, owner, "middle", 2000)
	testsupport.CreateTrip(t, db, other, "not mine", 4000)

	trips, err := repo.GetListOfTripsByUserId(ctx, 1, 50, owner.ID)
	require.NoError(t, err)
	require.Len(t, trips, 3)
	assert.Equal(t, "new", trips[0].TripName)
	assert.Equal(t, "middle", trips[1].TripName)
	assert.Equal(t, "old", trips[2].TripName)

	page2, err := repo.GetListOfTripsByUserId(ctx, 2, 2, owner.ID)
	require.NoError(t, err)
	require.Len(t, page2, 1)
	assert.Equal(t, "old", page2[0].TripName)
}

func TestTripRepository_FindOwned(t *testing.T) {
	db := testsupport.NewDB(t)
	repo := repositories.NewTripRepository(db)
	ctx := context.Background()

	owner := testsupport.CreateAccount(t, db, "owner@x.in")
	other := testsupport.CreateAccount(t, db, "other@x.in")
	trip := testsupport.CreateTrip(t, db, owner, "Goa", 0)

	got, err := repo.FindOwned(ctx, trip.ID, owner.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Goa", got.TripName)
	assert.Equal(t, "2025-01-10", time.Time(got.StartDate).Format("2006-01-02"))

	got, err = repo.FindOwned(ctx, trip.ID, other.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = repo.FindOwned(ctx, uuid.New(), owner.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTripRepository_DeleteOwnedRemovesSections(t *testing.T) {
	db := testsupport.NewDB(t)
	trips := repositories.NewTripRepository(db)
	sections := repositories.NewItineraryRepository(db)
	ctx := context.Background()

	owner := testsupport.CreateAccount(t, db, "owner@x.in")
	other := testsupport.CreateAccount(t, db, "other@x.in")
	trip := testsupport.CreateTrip(t, db, owner, "Kerala", 0)

	require.NoError(t, sections.ReplaceForTrip(ctx, trip.ID, []dbm.ItinerarySection{
		{SectionDate: testsupport.Day(2025, time.January, 10), Details: "Kochi"},
		{SectionDate: testsupport.Day(2025, time.January, 11), Details: "Munnar"},
	}))

	deleted, err := trips.DeleteOwned(ctx, trip.ID, other.ID)
	require.NoError(t, err)
	assert.False(t, deleted, "a stranger cannot delete the trip")

	deleted, err = trips.DeleteOwned(ctx, trip.ID, owner.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	var remaining int64
	require.NoError(t, db.Model(&dbm.ItinerarySection{}).Where("trip_id = ?", trip.ID).Count(&remaining).Error)
	assert.Zero(t, remaining)

	deleted, err = trips.DeleteOwned(ctx, trip.ID, owner.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
