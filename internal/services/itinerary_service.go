package services

import (
	"context"
	"fmt"
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

type ItineraryServiceInterface interface {
	GetSections(ctx context.Context, userId uuid.UUID, tripId string) ([]response_models.SectionResponse, error)
	// SaveSections replaces the whole itinerary of a trip. An empty list clears it.
	SaveSections(ctx context.Context, userId uuid.UUID, tripId string, sections []request_models.SectionInput) ([]response_models.SectionResponse, error)
}

type ItineraryService struct {
	tripRepo      repositories.TripRepository
	itineraryRepo repositories.ItineraryRepository
}

func NewItineraryService(tripRepo repositories.TripRepository, itineraryRepo repositories.ItineraryRepository) ItineraryServiceInterface {
	return &ItineraryService{
		tripRepo:      tripRepo,
		itineraryRepo: itineraryRepo,
	}
}

func toSectionResponses(sections []db_models.ItinerarySection) []response_models.SectionResponse {
	out := make([]response_models.SectionResponse, 0, len(sections))
	for _, s := range sections {
		out = append(out, response_models.SectionResponse{
			ID:      s.ID.String(),
			Date:    utils.FormatDate(time.Time(s.SectionDate)),
			Budget:  s.Budget,
			Details: s.Details,
		})
	}
	return out
}

// MaxSectionBudget is the largest value a DECIMAL(10,2) budget column holds.
const MaxSectionBudget = 99999999.99

func buildSections(inputs []request_models.SectionInput) ([]db_models.ItinerarySection, error) {
	sections := make([]db_models.ItinerarySection, 0, len(inputs))
	for _, in := range inputs {
		date, err := utils.ParseDate(in.Date)
		if err != nil {
			return nil, err
		}

		var budget *float64
		if in.Budget != nil {
			if *in.Budget < 0 {
				return nil, utils.ErrNegativeBudget
			}
			b := roundMoney(*in.Budget)
			if b > MaxSectionBudget {
				return nil, utils.ErrBudgetTooLarge
			}
			budget = &b
		}

		sections = append(sections, db_models.ItinerarySection{
			SectionDate: datatypes.Date(utils.CalendarDate(date)),
			Budget:      budget,
			Details:     strings.TrimSpace(in.Details),
		})
	}
	return sections, nil
}

func (s *ItineraryService) GetSections(ctx context.Context, userId uuid.UUID, tripId string) ([]response_models.SectionResponse, error) {
	trip, err := loadOwnedTrip(ctx, s.tripRepo, userId, tripId)
	if err != nil {
		return nil, err
	}

	sections, err := s.itineraryRepo.ListByTrip(ctx, trip.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return toSectionResponses(sections), nil
}

func (s *ItineraryService) SaveSections(ctx context.Context, userId uuid.UUID, tripId string, inputs []request_models.SectionInput) ([]response_models.SectionResponse, error) {
	trip, err := loadOwnedTrip(ctx, s.tripRepo, userId, tripId)
	if err != nil {
		return nil, err
	}

	sections, err := buildSections(inputs)
	if err != nil {
		return nil, err
	}

	startTime := time.Now()
	if err := s.itineraryRepo.ReplaceForTrip(ctx, trip.ID, sections); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	zap.L().Info("itinerary saved",
		zap.String("trip_id", trip.ID.String()),
		zap.Int("sections", len(sections)),
		zap.Duration("elapsed", time.Since(startTime)))

	return s.GetSections(ctx, userId, tripId)
}
