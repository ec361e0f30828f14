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

func TestDashboardRepository(t *testing.T) {
	db := testsupport.NewDB(t)
	repo := repositories.NewDashboardRepository(db)
	itinerary := repositories.NewItineraryRepository(db)
	ctx := context.Background()

	owner := testsupport.CreateAccount(t, db, "owner@x.in")
	testsupport.CreateAccount(t, db, "other@x.in")

	jaipur1 := testsupport.CreateTrip(t, db, owner, "one", 0)
	testsupport.CreateTrip(t, db, owner, "two", 0)
	goa := &dbm.Trip{UserID: owner.ID, TripName: "beach", City: "Panaji", State: "Goa",
		StartDate: testsupport.Day(2025, time.May, 1), EndDate: testsupport.Day(2025, time.May, 2)}
	require.NoError(t, db.Create(goa).Error)

	require.NoError(t, itinerary.ReplaceForTrip(ctx, jaipur1.ID, []dbm.ItinerarySection{
		{SectionDate: testsupport.Day(2025, time.January, 10), Budget: budget(1000.25)},
		{SectionDate: testsupport.Day(2025, time.January, 11), Budget: budget(500)},
		{SectionDate: testsupport.Day(2025, time.January, 12)},
	}))

	accounts, err := repo.CountTotalAccounts(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, accounts)

	now := time.Now()
	recent, err := repo.CountNewAccounts(ctx, now.Add(-time.Hour), now.Add(time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 2, recent)

	trips, err := repo.CountTotalTrips(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, trips)

	sections, err := repo.CountTotalSections(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, sections)

	sum, err := repo.SumPlannedBudget(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 1500.25, sum, 0.001)

	top, err := repo.TopDestinations(ctx, now.Add(-time.Hour), now.Add(time.Hour), 5)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "Jaipur", top[0].City)
	assert.Equal(t, "Rajasthan", top[0].State)
	assert.EqualValues(t, 2, top[0].Count)
	assert.Equal(t, "Panaji", top[1].City)
}
