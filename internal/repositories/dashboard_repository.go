package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	dbm "globetrotter/internal/models/db_models"
)

type DashboardRepository interface {
	// KPIs / counts
	CountTotalAccounts(ctx context.Context) (int64, error)
	CountNewAccounts(ctx context.Context, start, end time.Time) (int64, error)
	CountTotalTrips(ctx context.Context) (int64, error)
	CountTotalSections(ctx context.Context) (int64, error)
	SumPlannedBudget(ctx context.Context) (float64, error)

	// Top destinations
	TopDestinations(ctx context.Context, start, end time.Time, limit int) ([]LocationRow, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

// ---------- Row helpers ----------
type LocationRow struct {
	City  string `gorm:"column:city"`
	State string `gorm:"column:state"`
	Count int64  `gorm:"column:count"`
}

// ---------- Counts ----------
func (r *dashboardRepository) CountTotalAccounts(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.Account{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountNewAccounts(ctx context.Context, start, end time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Account{}).
		Where("created_at BETWEEN ? AND ?", start.Unix(), end.Unix()).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountTotalTrips(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.Trip{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountTotalSections(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.ItinerarySection{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) SumPlannedBudget(ctx context.Context) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).
		Model(&dbm.ItinerarySection{}).
		Select("COALESCE(SUM(budget), 0)").
		Row().
		Scan(&sum)
	return sum, err
}

// ---------- Top destinations ----------
func (r *dashboardRepository) TopDestinations(ctx context.Context, start, end time.Time, limit int) ([]LocationRow, error) {
	var rows []LocationRow
	err := r.db.WithContext(ctx).
		Model(&dbm.Trip{}).
		Select("city, state, COUNT(*) AS count").
		Where("created_at BETWEEN ? AND ?", start.Unix(), end.Unix()).
		Where("city <> ''").
		Group("city, state").
		Order("count DESC").
		Order("city ASC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
