package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"weathertrack/internal/model"
)

// readingColumns are the fields refreshed when a snapshot for the same
// location and timestamp is stored again. Repeated fetch-and-store cycles
// update in place instead of accumulating duplicate rows.
var readingColumns = []string{
	"temperature", "feels_like", "pressure", "humidity",
	"wind_speed", "wind_deg", "description", "icon",
}

// WeatherRepository persists the three snapshot variants. Callers are
// responsible for resolving location ownership before any call here.
type WeatherRepository interface {
	SaveCurrent(ctx context.Context, snapshot *model.CurrentWeather) error
	SaveForecast(ctx context.Context, snapshots []model.ForecastWeather) error
	SaveHistory(ctx context.Context, snapshots []model.HistoricalWeather) error
	LatestCurrent(ctx context.Context, locationID uint) (*model.CurrentWeather, error)
	ListForecast(ctx context.Context, locationID uint) ([]model.ForecastWeather, error)
	ListHistory(ctx context.Context, locationID uint) ([]model.HistoricalWeather, error)
}

type weatherRepository struct {
	db *gorm.DB
}

// NewWeatherRepository builds a GORM-backed repository.
func NewWeatherRepository(db *gorm.DB) WeatherRepository {
	return &weatherRepository{db: db}
}

func (r *weatherRepository) upsert() *gorm.DB {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "location_id"}, {Name: "timestamp"}},
		DoUpdates: clause.AssignmentColumns(readingColumns),
	})
}

func (r *weatherRepository) SaveCurrent(ctx context.Context, snapshot *model.CurrentWeather) error {
	return r.upsert().WithContext(ctx).Create(snapshot).Error
}

func (r *weatherRepository) SaveForecast(ctx context.Context, snapshots []model.ForecastWeather) error {
	if len(snapshots) == 0 {
		return nil
	}
	return r.upsert().WithContext(ctx).Create(&snapshots).Error
}

func (r *weatherRepository) SaveHistory(ctx context.Context, snapshots []model.HistoricalWeather) error {
	if len(snapshots) == 0 {
		return nil
	}
	return r.upsert().WithContext(ctx).Create(&snapshots).Error
}

// LatestCurrent returns the newest stored observation for the location.
func (r *weatherRepository) LatestCurrent(ctx context.Context, locationID uint) (*model.CurrentWeather, error) {
	var snapshot model.CurrentWeather
	if err := r.db.WithContext(ctx).
		Where("location_id = ?", locationID).
		Order("timestamp DESC").
		First(&snapshot).Error; err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (r *weatherRepository) ListForecast(ctx context.Context, locationID uint) ([]model.ForecastWeather, error) {
	snapshots := make([]model.ForecastWeather, 0)
	if err := r.db.WithContext(ctx).
		Where("location_id = ?", locationID).
		Order("timestamp ASC").
		Find(&snapshots).Error; err != nil {
		return nil, err
	}
	return snapshots, nil
}

// ListHistory returns stored observations newest first.
func (r *weatherRepository) ListHistory(ctx context.Context, locationID uint) ([]model.HistoricalWeather, error) {
	snapshots := make([]model.HistoricalWeather, 0)
	if err := r.db.WithContext(ctx).
		Where("location_id = ?", locationID).
		Order("timestamp DESC").
		Find(&snapshots).Error; err != nil {
		return nil, err
	}
	return snapshots, nil
}
