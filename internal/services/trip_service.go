package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"globetrotter/internal/models/db_models"
	"globetrotter/internal/models/request_models"
	"globetrotter/internal/models/response_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/utils"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 100
)

type TripServiceInterface interface {
	GetListOfTripsByUserId(ctx context.Context, page int, pageSize int, userId uuid.UUID) ([]response_models.TripResponse, error)
	CreateTrip(ctx context.Context, userId uuid.UUID, request request_models.CreateTripRequest) (uuid.UUID, error)
	GetTripDetails(ctx context.Context, userId uuid.UUID, tripId string) (*response_models.TripDetailResponse, error)
	DeleteTrip(ctx context.Context, userId uuid.UUID, tripId string) error
}

type TripService struct {
	tripRepo      repositories.TripRepository
	itineraryRepo repositories.ItineraryRepository
}

func NewTripService(tripRepo repositories.TripRepository, itineraryRepo repositories.ItineraryRepository) TripServiceInterface {
	return &TripService{
		tripRepo:      tripRepo,
		itineraryRepo: itineraryRepo,
	}
}

func validatePaging(page int, pageSize int) error {
	if page < 1 {
		return utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		return utils.ErrInvalidPageSize
	}
	return nil
}

// parseTripID treats a malformed id like a missing trip.
func parseTripID(tripId string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(tripId))
	if err != nil {
		return uuid.Nil, utils.ErrTripNotFound
	}
	return id, nil
}

// loadOwnedTrip resolves a trip the caller owns. Trips of other users are
// reported exactly like missing ones.
func loadOwnedTrip(ctx context.Context, repo repositories.TripRepository, userId uuid.UUID, tripId string) (*db_models.Trip, error) {
	id, err := parseTripID(tripId)
	if err != nil {
		return nil, err
	}
	trip, err := repo.FindOwned(ctx, id, userId)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return trip, nil
}

func toTripResponse(trip *db_models.Trip) response_models.TripResponse {
	return response_models.TripResponse{
		ID:        trip.ID.String(),
		TripName:  trip.TripName,
		City:      trip.City,
		State:     trip.State,
		Country:   trip.Country,
		StartDate: utils.FormatDate(time.Time(trip.StartDate)),
		EndDate:   utils.FormatDate(time.Time(trip.EndDate)),
		CreatedAt: utils.FormatRFC3339IST(utils.FromUnixSecondsIST(trip.CreatedAt)),
	}
}

// durationDays counts calendar days including both ends.
func durationDays(start, end time.Time) int {
	if start.IsZero() || end.IsZero() {
		return 0
	}
	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()
	from := time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC)
	to := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours()/24) + 1
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

func (t *TripService) GetListOfTripsByUserId(ctx context.Context, page int, pageSize int, userId uuid.UUID) ([]response_models.TripResponse, error) {
	if err := validatePaging(page, pageSize); err != nil {
		return nil, err
	}

	trips, err := t.tripRepo.GetListOfTripsByUserId(ctx, page, pageSize, userId)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	tripResponses := make([]response_models.TripResponse, 0, len(trips))
	for i := range trips {
		tripResponses = append(tripResponses, toTripResponse(&trips[i]))
	}

	return tripResponses, nil
}

func (t *TripService) CreateTrip(ctx context.Context, userId uuid.UUID, request request_models.CreateTripRequest) (uuid.UUID, error) {
	tripName := strings.TrimSpace(request.TripName)
	city := strings.TrimSpace(request.City)
	if tripName == "" || city == "" {
		return uuid.Nil, utils.ErrInvalidInput
	}

	startDate, err := utils.ParseDate(request.StartDate)
	if err != nil {
		return uuid.Nil, err
	}
	endDate, err := utils.ParseDate(request.EndDate)
	if err != nil {
		return uuid.Nil, err
	}
	if endDate.Before(startDate) {
		return uuid.Nil, utils.ErrInvalidDateRange
	}

	country := strings.TrimSpace(request.Country)
	if country == "" {
		country = db_models.DefaultCountry
	}

	trip := &db_models.Trip{
		UserID:    userId,
		TripName:  tripName,
		City:      city,
		State:     strings.TrimSpace(request.State),
		Country:   country,
		StartDate: datatypes.Date(utils.CalendarDate(startDate)),
		EndDate:   datatypes.Date(utils.CalendarDate(endDate)),
	}

	if err := t.tripRepo.Insert(ctx, trip); err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	zap.L().Info("trip created",
		zap.String("trip_id", trip.ID.String()),
		zap.String("user_id", userId.String()))

	return trip.ID, nil
}

func (t *TripService) GetTripDetails(ctx context.Context, userId uuid.UUID, tripId string) (*response_models.TripDetailResponse, error) {
	trip, err := loadOwnedTrip(ctx, t.tripRepo, userId, tripId)
	if err != nil {
		return nil, err
	}

	sections, err := t.itineraryRepo.ListByTrip(ctx, trip.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	detail := &response_models.TripDetailResponse{
		TripResponse: toTripResponse(trip),
		DurationDays: durationDays(time.Time(trip.StartDate), time.Time(trip.EndDate)),
		SectionCount: len(sections),
		Sections:     toSectionResponses(sections),
	}
	var total float64
	for _, s := range sections {
		if s.Budget != nil {
			total += *s.Budget
		}
	}
	detail.TotalBudget = roundMoney(total)

	return detail, nil
}

func (t *TripService) DeleteTrip(ctx context.Context, userId uuid.UUID, tripId string) error {
	id, err := parseTripID(tripId)
	if err != nil {
		return err
	}

	deleted, err := t.tripRepo.DeleteOwned(ctx, id, userId)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if !deleted {
		return utils.ErrTripNotFound
	}

	zap.L().Info("trip deleted",
		zap.String("trip_id", id.String()),
		zap.String("user_id", userId.String()))
	return nil
}
