package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"globetrotter/internal/models/request_models"
	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

func amount(v float64) *float64 { return &v }

func TestItineraryService_SaveReplacesPreviousSet(t *testing.T) {
	f := newTripFixture(t)
	ctx := context.Background()

	id, err := f.trips.CreateTrip(ctx, f.owner.ID, goaTrip())
	require.NoError(t, err)

	first, err := f.itinerary.SaveSections(ctx, f.owner.ID, id.String(), []request_models.SectionInput{
		{Date: "2025-07-02", Budget: amount(1500), Details: "Scooter tour"},
		{Date: "2025-07-01", Budget: amount(800.456), Details: "Check in"},
		{Date: "2025-07-03", Details: "Rest"},
	})
	require.NoError(t, err)
	require.Len(t, first, 3)
	assert.Equal(t, "2025-07-01", first[0].Date)
	require.NotNil(t, first[0].Budget)
	assert.InDelta(t, 800.46, *first[0].Budget, 0.001, "budgets keep two decimals")
	assert.Nil(t, first[2].Budget)

	detail, err := f.trips.GetTripDetails(ctx, f.owner.ID, id.String())
	require.NoError(t, err)
	assert.Equal(t, 3, detail.SectionCount)
	assert.InDelta(t, 2300.46, detail.TotalBudget, 0.001)

	second, err := f.itinerary.SaveSections(ctx, f.owner.ID, id.String(), []request_models.SectionInput{
		{Date: "2025-07-04", Details: "Fly home"},
	})
	require.NoError(t, err)
	require.Len(t, second, 1)
	for _, old := range first {
		assert.NotEqual(t, old.ID, second[0].ID, "old section ids are gone")
	}

	listed, err := f.itinerary.GetSections(ctx, f.owner.ID, id.String())
	require.NoError(t, err)
	assert.Equal(t, second, listed)

	cleared, err := f.itinerary.SaveSections(ctx, f.owner.ID, id.String(), nil)
	require.NoError(t, err)
	assert.Empty(t, cleared)
}

func TestItineraryService_Validation(t *testing.T) {
	f := newTripFixture(t)
	ctx := context.Background()

	id, err := f.trips.CreateTrip(ctx, f.owner.ID, goaTrip())
	require.NoError(t, err)
	_, err = f.itinerary.SaveSections(ctx, f.owner.ID, id.String(), []request_models.SectionInput{
		{Date: "2025-07-01", Details: "keep me"},
	})
	require.NoError(t, err)

	_, err = f.itinerary.SaveSections(ctx, f.owner.ID, id.String(), []request_models.SectionInput{
		{Date: "2025-07-02", Details: "ok"},
		{Date: "2025-07-03", Budget: amount(-1)},
	})
	assert.ErrorIs(t, err, utils.ErrNegativeBudget)

	_, err = f.itinerary.SaveSections(ctx, f.owner.ID, id.String(), []request_models.SectionInput{{Date: ""}})
	assert.ErrorIs(t, err, utils.ErrInvalidDate)

	_, err = f.itinerary.SaveSections(ctx, f.owner.ID, id.String(), []request_models.SectionInput{
		{Date: "2025-07-02", Budget: amount(100000000)},
	})
	assert.ErrorIs(t, err, utils.ErrBudgetTooLarge)

	// Rounds up past the column's range.
	_, err = f.itinerary.SaveSections(ctx, f.owner.ID, id.String(), []request_models.SectionInput{
		{Date: "2025-07-02", Budget: amount(99999999.996)},
	})
	assert.ErrorIs(t, err, utils.ErrBudgetTooLarge)

	kept, err := f.itinerary.GetSections(ctx, f.owner.ID, id.String())
	require.NoError(t, err)
	require.Len(t, kept, 1, "a rejected save changes nothing")
	assert.Equal(t, "keep me", kept[0].Details)
}

func TestItineraryService_AcceptsLargestBudget(t *testing.T) {
	f := newTripFixture(t)
	ctx := context.Background()

	id, err := f.trips.CreateTrip(ctx, f.owner.ID, goaTrip())
	require.NoError(t, err)

	saved, err := f.itinerary.SaveSections(ctx, f.owner.ID, id.String(), []request_models.SectionInput{
		{Date: "2025-07-02", Budget: amount(services.MaxSectionBudget)},
	})
	require.NoError(t, err)
	require.Len(t, saved, 1)
	require.NotNil(t, saved[0].Budget)
	assert.InDelta(t, services.MaxSectionBudget, *saved[0].Budget, 0.001)
}

func TestItineraryService_Ownership(t *testing.T) {
	f := newTripFixture(t)
	ctx := context.Background()

	id, err := f.trips.CreateTrip(ctx, f.owner.ID, goaTrip())
	require.NoError(t, err)

	_, err = f.itinerary.GetSections(ctx, f.stranger.ID, id.String())
	assert.ErrorIs(t, err, utils.ErrTripNotFound)

	_, err = f.itinerary.SaveSections(ctx, f.stranger.ID, id.String(), []request_models.SectionInput{{Date: "2025-07-01"}})
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}
