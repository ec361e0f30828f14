package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "globetrotter/internal/models/db_models"
)

type TripRepository interface {
	Insert(ctx context.Context, trip *dbm.Trip) error
	GetListOfTripsByUserId(ctx context.Context, page int, pageSize int, userId uuid.UUID) ([]dbm.Trip, error)
	// FindOwned returns nil when the trip does not exist or belongs to someone else.
	FindOwned(ctx context.Context, tripId uuid.UUID, userId uuid.UUID) (*dbm.Trip, error)
	// DeleteOwned reports false when there was nothing of the caller's to delete.
	DeleteOwned(ctx context.Context, tripId uuid.UUID, userId uuid.UUID) (bool, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) Insert(ctx context.Context, trip *dbm.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) GetListOfTripsByUserId(ctx context.Context, page int, pageSize int, userId uuid.UUID) ([]dbm.Trip, error) {
	var trips []dbm.Trip
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Order("id DESC").
		Scopes(paginate(page, pageSize)).
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepository) FindOwned(ctx context.Context, tripId uuid.UUID, userId uuid.UUID) (*dbm.Trip, error) {
	var trip dbm.Trip
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", tripId, userId).
		First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

// DeleteOwned removes the trip and its sections in one transaction. The
// sections are deleted explicitly so the result does not depend on the
// driver enforcing ON DELETE CASCADE.
func (r *tripRepository) DeleteOwned(ctx context.Context, tripId uuid.UUID, userId uuid.UUID) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&dbm.Trip{}).
			Where("id = ? AND user_id = ?", tripId, userId).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return nil
		}

		if err := tx.Where("trip_id = ?", tripId).Delete(&dbm.ItinerarySection{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ? AND user_id = ?", tripId, userId).Delete(&dbm.Trip{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	return deleted, err
}
