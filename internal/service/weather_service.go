package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "weathertrack/internal/errors"
	"weathertrack/internal/model"
	"weathertrack/internal/repository"
)

// WeatherService reads and stores weather snapshots for favorite locations.
// Ownership is resolved transitively: every operation first verifies the
// location belongs to the caller, and a location that does not (or does not
// exist at all) reports not-found.
type WeatherService interface {
	GetCurrent(ctx context.Context, userID, locationID uint) (*model.CurrentWeather, error)
	StoreCurrent(ctx context.Context, userID, locationID uint, reading model.Reading) error
	GetForecast(ctx context.Context, userID, locationID uint) ([]model.ForecastWeather, error)
	StoreForecast(ctx context.Context, userID, locationID uint, readings []model.Reading) error
	GetHistory(ctx context.Context, userID, locationID uint) ([]model.HistoricalWeather, error)
	StoreHistory(ctx context.Context, userID, locationID uint, readings []model.Reading) error
}

type weatherService struct {
	locationRepo repository.LocationRepository
	weatherRepo  repository.WeatherRepository
}

// NewWeatherService creates a new weather service.
func NewWeatherService(locationRepo repository.LocationRepository, weatherRepo repository.WeatherRepository) WeatherService {
	return &weatherService{
		locationRepo: locationRepo,
		weatherRepo:  weatherRepo,
	}
}

// resolveOwned maps a missing or foreign location to ErrLocationNotFound.
func (s *weatherService) resolveOwned(ctx context.Context, userID, locationID uint) error {
	if _, err := s.locationRepo.FindOwned(ctx, locationID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrLocationNotFound
		}
		return fmt.Errorf("resolve location: %w", err)
	}
	return nil
}

func (s *weatherService) GetCurrent(ctx context.Context, userID, locationID uint) (*model.CurrentWeather, error) {
	if err := s.resolveOwned(ctx, userID, locationID); err != nil {
		return nil, err
	}
	snapshot, err := s.weatherRepo.LatestCurrent(ctx, locationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoCurrentWeather
		}
		return nil, fmt.Errorf("load current weather: %w", err)
	}
	return snapshot, nil
}

func (s *weatherService) StoreCurrent(ctx context.Context, userID, locationID uint, reading model.Reading) error {
	if err := s.resolveOwned(ctx, userID, locationID); err != nil {
		return err
	}
	snapshot := &model.CurrentWeather{LocationID: locationID, Reading: reading}
	if err := s.weatherRepo.SaveCurrent(ctx, snapshot); err != nil {
		return fmt.Errorf("store current weather: %w", err)
	}
	return nil
}

func (s *weatherService) GetForecast(ctx context.Context, userID, locationID uint) ([]model.ForecastWeather, error) {
	if err := s.resolveOwned(ctx, userID, locationID); err != nil {
		return nil, err
	}
	return s.weatherRepo.ListForecast(ctx, locationID)
}

func (s *weatherService) StoreForecast(ctx context.Context, userID, locationID uint, readings []model.Reading) error {
	if err := s.resolveOwned(ctx, userID, locationID); err != nil {
		return err
	}
	snapshots := make([]model.ForecastWeather, 0, len(readings))
	for _, r := range readings {
		snapshots = append(snapshots, model.ForecastWeather{LocationID: locationID, Reading: r})
	}
	if err := s.weatherRepo.SaveForecast(ctx, snapshots); err != nil {
		return fmt.Errorf("store forecast: %w", err)
	}
	return nil
}

func (s *weatherService) GetHistory(ctx context.Context, userID, locationID uint) ([]model.HistoricalWeather, error) {
	if err := s.resolveOwned(ctx, userID, locationID); err != nil {
		return nil, err
	}
	return s.weatherRepo.ListHistory(ctx, locationID)
}

func (s *weatherService) StoreHistory(ctx context.Context, userID, locationID uint, readings []model.Reading) error {
	if err := s.resolveOwned(ctx, userID, locationID); err != nil {
		return err
	}
	snapshots := make([]model.HistoricalWeather, 0, len(readings))
	for _, r := range readings {
		snapshots = append(snapshots, model.HistoricalWeather{LocationID: locationID, Reading: r})
	}
	if err := s.weatherRepo.SaveHistory(ctx, snapshots); err != nil {
		return fmt.Errorf("store history: %w", err)
	}
	return nil
}
