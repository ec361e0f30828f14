package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"globetrotter/internal/models/db_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/utils"
)

type SeedServiceInterface interface {
	// SeedReferenceData fills the states and cities tables when they are empty.
	SeedReferenceData(ctx context.Context) error
	// EnsureAdmin creates the admin account unless the email is already taken.
	EnsureAdmin(ctx context.Context, email string, password string) error
}

type SeedService struct {
	geoRepo     repositories.GeoRepository
	accountRepo repositories.AccountRepository
}

func NewSeedService(geoRepo repositories.GeoRepository, accountRepo repositories.AccountRepository) SeedServiceInterface {
	return &SeedService{
		geoRepo:     geoRepo,
		accountRepo: accountRepo,
	}
}

func (s *SeedService) SeedReferenceData(ctx context.Context) error {
	stateCount, err := s.geoRepo.CountStates(ctx)
	if err != nil {
		return fmt.Errorf("count states: %w", err)
	}
	if stateCount == 0 {
		states := make([]db_models.State, 0, len(seedStates))
		for _, name := range seedStates {
			states = append(states, db_models.State{Name: name, Country: db_models.DefaultCountry})
		}
		if err := s.geoRepo.InsertStates(ctx, states); err != nil {
			return fmt.Errorf("insert states: %w", err)
		}
		zap.L().Info("states populated", zap.Int("count", len(states)))
	}

	cityCount, err := s.geoRepo.CountCities(ctx)
	if err != nil {
		return fmt.Errorf("count cities: %w", err)
	}
	if cityCount == 0 {
		cities := make([]db_models.City, 0, len(seedCities))
		for _, c := range seedCities {
			cities = append(cities, db_models.City{
				Name:      c.Name,
				StateName: c.State,
				Country:   db_models.DefaultCountry,
			})
		}
		if err := s.geoRepo.InsertCities(ctx, cities); err != nil {
			return fmt.Errorf("insert cities: %w", err)
		}
		zap.L().Info("cities populated", zap.Int("count", len(cities)))
	}

	return nil
}

func (s *SeedService) EnsureAdmin(ctx context.Context, email string, password string) error {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil
	}

	existing, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("find admin: %w", err)
	}
	if existing != nil {
		return nil
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	phone := "+91-0000000000"
	city := "Delhi"
	admin := &db_models.Account{
		FirstName:    "Admin",
		LastName:     "User",
		Email:        email,
		PasswordHash: hashedPassword,
		Phone:        &phone,
		City:         &city,
		Country:      db_models.DefaultCountry,
		Role:         db_models.RoleAdmin,
	}
	if err := s.accountRepo.InsertTx(admin, ctx); err != nil {
		return fmt.Errorf("insert admin: %w", err)
	}

	zap.L().Info("admin account created", zap.String("email", email))
	return nil
}
