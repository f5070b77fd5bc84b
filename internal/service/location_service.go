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

// LocationService manages a user's favorite locations. All operations are
// scoped to the owning user.
type LocationService interface {
	AddFavorite(ctx context.Context, userID uint, name string, latitude, longitude float64) (*model.FavoriteLocation, error)
	ListFavorites(ctx context.Context, userID uint) ([]model.FavoriteLocation, error)
	DeleteFavorite(ctx context.Context, userID, locationID uint) error
}

type locationService struct {
	locationRepo repository.LocationRepository
}

// NewLocationService creates a new location service.
func NewLocationService(locationRepo repository.LocationRepository) LocationService {
	return &locationService{locationRepo: locationRepo}
}

func (s *locationService) AddFavorite(ctx context.Context, userID uint, name string, latitude, longitude float64) (*model.FavoriteLocation, error) {
	loc := &model.FavoriteLocation{
		UserID:       userID,
		LocationName: name,
		Latitude:     latitude,
		Longitude:    longitude,
	}
	if err := s.locationRepo.Create(ctx, loc); err != nil {
		return nil, fmt.Errorf("create favorite: %w", err)
	}
	return loc, nil
}

// ListFavorites returns all of the user's favorites; an empty slice is a
// valid, successful result.
func (s *locationService) ListFavorites(ctx context.Context, userID uint) ([]model.FavoriteLocation, error) {
	return s.locationRepo.ListByUser(ctx, userID)
}

// DeleteFavorite removes the favorite only when it belongs to the user.
// A record owned by someone else reports not-found, same as a missing one.
func (s *locationService) DeleteFavorite(ctx context.Context, userID, locationID uint) error {
	if err := s.locationRepo.DeleteOwned(ctx, locationID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrFavoriteNotFound
		}
		return fmt.Errorf("delete favorite: %w", err)
	}
	return nil
}
