package repository

import (
	"context"

	"gorm.io/gorm"

	"weathertrack/internal/model"
)

// LocationRepository persists favorite locations. Every lookup and mutation
// on a single record filters by both the record id and the owner id, so a
// record belonging to someone else is indistinguishable from one that does
// not exist.
type LocationRepository interface {
	Create(ctx context.Context, loc *model.FavoriteLocation) error
	ListByUser(ctx context.Context, userID uint) ([]model.FavoriteLocation, error)
	FindOwned(ctx context.Context, id, userID uint) (*model.FavoriteLocation, error)
	DeleteOwned(ctx context.Context, id, userID uint) error
}

type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository builds a GORM-backed repository.
func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) Create(ctx context.Context, loc *model.FavoriteLocation) error {
	return r.db.WithContext(ctx).Create(loc).Error
}

func (r *locationRepository) ListByUser(ctx context.Context, userID uint) ([]model.FavoriteLocation, error) {
	locations := make([]model.FavoriteLocation, 0)
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *locationRepository) FindOwned(ctx context.Context, id, userID uint) (*model.FavoriteLocation, error) {
	var loc model.FavoriteLocation
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&loc).Error; err != nil {
		return nil, err
	}
	return &loc, nil
}

// DeleteOwned removes the record matching id and owner. A delete whose filter
// matches nothing returns gorm.ErrRecordNotFound rather than succeeding
// silently.
func (r *locationRepository) DeleteOwned(ctx context.Context, id, userID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.FavoriteLocation{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
