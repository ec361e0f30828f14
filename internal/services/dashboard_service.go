package services

import (
	"context"
	"fmt"
	"time"

	resp "globetrotter/internal/models/response_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/utils"
)

const (
	DefaultDashboardDays = 30
	MaxDashboardDays     = 365
	DefaultTopN          = 5
	MaxTopN              = 20
)

type DashboardService interface {
	BuildDashboard(ctx context.Context, lastDays int, topN int) (*resp.DashboardReport, error)
}

type dashboardService struct {
	repo repositories.DashboardRepository
	now  func() time.Time
}

func NewDashboardService(repo repositories.DashboardRepository) DashboardService {
	return &dashboardService{repo: repo, now: time.Now}
}

func (s *dashboardService) BuildDashboard(ctx context.Context, lastDays int, topN int) (*resp.DashboardReport, error) {
	if lastDays < 1 || lastDays > MaxDashboardDays || topN < 1 || topN > MaxTopN {
		return nil, utils.ErrInvalidInput
	}

	end := s.now()
	rng := resp.TimeRange{Start: end.AddDate(0, 0, -lastDays), End: end}

	// ---------- Core counts ----------
	totalAccounts, err := s.repo.CountTotalAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	newAccounts, err := s.repo.CountNewAccounts(ctx, rng.Start, rng.End)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	totalTrips, err := s.repo.CountTotalTrips(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	totalSections, err := s.repo.CountTotalSections(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	budget, err := s.repo.SumPlannedBudget(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	// ---------- Top locations ----------
	locRows, err := s.repo.TopDestinations(ctx, rng.Start, rng.End, topN)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	topDestinations := make([]resp.DestinationStat, 0, len(locRows))
	for _, r := range locRows {
		topDestinations = append(topDestinations, resp.DestinationStat{
			City:  r.City,
			State: r.State,
			Trips: r.Count,
		})
	}

	return &resp.DashboardReport{
		Range: rng,
		KPIs: resp.KPIBlock{
			TotalAccounts:      totalAccounts,
			NewAccounts:        newAccounts,
			TotalTrips:         totalTrips,
			TotalSections:      totalSections,
			TotalPlannedBudget: roundMoney(budget),
		},
		TopDestinations: topDestinations,
	}, nil
}
