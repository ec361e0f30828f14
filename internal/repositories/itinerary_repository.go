package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "globetrotter/internal/models/db_models"
)

type ItineraryRepository interface {
	ListByTrip(ctx context.Context, tripId uuid.UUID) ([]dbm.ItinerarySection, error)
	// ReplaceForTrip deletes every section of the trip and inserts the given
	// ones inside a single transaction.
	ReplaceForTrip(ctx context.Context, tripId uuid.UUID, sections []dbm.ItinerarySection) error
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) ListByTrip(ctx context.Context, tripId uuid.UUID) ([]dbm.ItinerarySection, error) {
	sections := []dbm.ItinerarySection{}
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripId).
		Order("section_date ASC").
		Order("created_at ASC").
		Order("id ASC").
		Find(&sections).Error
	return sections, err
}

func (r *itineraryRepository) ReplaceForTrip(ctx context.Context, tripId uuid.UUID, sections []dbm.ItinerarySection) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("trip_id = ?", tripId).Delete(&dbm.ItinerarySection{}).Error; err != nil {
			return err
		}
		if len(sections) == 0 {
			return nil
		}
		for i := range sections {
			sections[i].TripID = tripId
		}
		return tx.Create(&sections).Error
	})
}
