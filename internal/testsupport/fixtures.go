package testsupport

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"globetrotter/internal/models/db_models"
)

// CreateAccount inserts a user with a throwaway password hash.
func CreateAccount(t testing.TB, db *gorm.DB, email string) *db_models.Account {
	t.Helper()

	account := &db_models.Account{
		FirstName:    "Test",
		LastName:     "User",
		Email:        email,
		PasswordHash: "not-a-real-hash",
		Country:      db_models.DefaultCountry,
		Role:         db_models.RoleUser,
	}
	require.NoError(t, db.WithContext(context.Background()).Create(account).Error)
	return account
}

// Day builds a calendar date at midnight UTC.
func Day(year int, month time.Month, day int) datatypes.Date {
	return datatypes.Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// CreateTrip inserts a trip owned by userID. createdAt lets tests control
// ordering; zero means now.
func CreateTrip(t testing.TB, db *gorm.DB, account *db_models.Account, name string, createdAt int64) *db_models.Trip {
	t.Helper()

	trip := &db_models.Trip{
		UserID:    account.ID,
		TripName:  name,
		City:      "Jaipur",
		State:     "Rajasthan",
		Country:   db_models.DefaultCountry,
		StartDate: Day(2025, time.January, 10),
		EndDate:   Day(2025, time.January, 14),
	}
	trip.CreatedAt = createdAt
	require.NoError(t, db.Create(trip).Error)
	return trip
}
