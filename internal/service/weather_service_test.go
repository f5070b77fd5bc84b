package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "weathertrack/internal/errors"
	"weathertrack/internal/model"
)

// MockWeatherRepository is a mock implementation of repository.WeatherRepository.
type MockWeatherRepository struct {
	mock.Mock
}

func (m *MockWeatherRepository) SaveCurrent(ctx context.Context, snapshot *model.CurrentWeather) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

func (m *MockWeatherRepository) SaveForecast(ctx context.Context, snapshots []model.ForecastWeather) error {
	args := m.Called(ctx, snapshots)
	return args.Error(0)
}

func (m *MockWeatherRepository) SaveHistory(ctx context.Context, snapshots []model.HistoricalWeather) error {
	args := m.Called(ctx, snapshots)
	return args.Error(0)
}

func (m *MockWeatherRepository) LatestCurrent(ctx context.Context, locationID uint) (*model.CurrentWeather, error) {
	args := m.Called(ctx, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CurrentWeather), args.Error(1)
}

func (m *MockWeatherRepository) ListForecast(ctx context.Context, locationID uint) ([]model.ForecastWeather, error) {
	args := m.Called(ctx, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ForecastWeather), args.Error(1)
}

func (m *MockWeatherRepository) ListHistory(ctx context.Context, locationID uint) ([]model.HistoricalWeather, error) {
	args := m.Called(ctx, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.HistoricalWeather), args.Error(1)
}

func ownedLocation(id, userID uint) *model.FavoriteLocation {
	return &model.FavoriteLocation{ID: id, UserID: userID, LocationName: "Berlin"}
}

func TestWeatherService_GetCurrent(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(locs *MockLocationRepository, weather *MockWeatherRepository)
		expectedError error
	}{
		{
			name: "returns latest snapshot",
			setupMock: func(locs *MockLocationRepository, weather *MockWeatherRepository) {
				locs.On("FindOwned", mock.Anything, uint(3), uint(7)).Return(ownedLocation(3, 7), nil)
				weather.On("LatestCurrent", mock.Anything, uint(3)).
					Return(&model.CurrentWeather{LocationID: 3, Reading: model.Reading{Temperature: 21.5}}, nil)
			},
			expectedError: nil,
		},
		{
			name: "location owned by someone else",
			setupMock: func(locs *MockLocationRepository, weather *MockWeatherRepository) {
				locs.On("FindOwned", mock.Anything, uint(3), uint(7)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrLocationNotFound,
		},
		{
			name: "location has no snapshot yet",
			setupMock: func(locs *MockLocationRepository, weather *MockWeatherRepository) {
				locs.On("FindOwned", mock.Anything, uint(3), uint(7)).Return(ownedLocation(3, 7), nil)
				weather.On("LatestCurrent", mock.Anything, uint(3)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrNoCurrentWeather,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			locationRepo := new(MockLocationRepository)
			weatherRepo := new(MockWeatherRepository)
			tt.setupMock(locationRepo, weatherRepo)

			svc := NewWeatherService(locationRepo, weatherRepo)
			snapshot, err := svc.GetCurrent(context.Background(), 7, 3)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, snapshot)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 21.5, snapshot.Temperature)
			}
			locationRepo.AssertExpectations(t)
			weatherRepo.AssertExpectations(t)
		})
	}
}

func TestWeatherService_StoreCurrentUnownedNeverTouchesStore(t *testing.T) {
	locationRepo := new(MockLocationRepository)
	weatherRepo := new(MockWeatherRepository)
	locationRepo.On("FindOwned", mock.Anything, uint(3), uint(7)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewWeatherService(locationRepo, weatherRepo)
	err := svc.StoreCurrent(context.Background(), 7, 3, model.Reading{Temperature: 10})

	assert.ErrorIs(t, err, apperrors.ErrLocationNotFound)
	weatherRepo.AssertNotCalled(t, "SaveCurrent", mock.Anything, mock.Anything)
}

func TestWeatherService_StoreForecast(t *testing.T) {
	locationRepo := new(MockLocationRepository)
	weatherRepo := new(MockWeatherRepository)
	locationRepo.On("FindOwned", mock.Anything, uint(3), uint(7)).Return(ownedLocation(3, 7), nil)
	weatherRepo.On("SaveForecast", mock.Anything, mock.AnythingOfType("[]model.ForecastWeather")).
		Run(func(args mock.Arguments) {
			snapshots := args.Get(1).([]model.ForecastWeather)
			assert.Len(t, snapshots, 2)
			for _, s := range snapshots {
				assert.Equal(t, uint(3), s.LocationID)
			}
		}).Return(nil)

	svc := NewWeatherService(locationRepo, weatherRepo)
	err := svc.StoreForecast(context.Background(), 7, 3, []model.Reading{
		{Timestamp: 1700000000, Temperature: 12},
		{Timestamp: 1700086400, Temperature: 14},
	})

	assert.NoError(t, err)
	weatherRepo.AssertExpectations(t)
}

func TestWeatherService_GetHistoryEmpty(t *testing.T) {
	locationRepo := new(MockLocationRepository)
	weatherRepo := new(MockWeatherRepository)
	locationRepo.On("FindOwned", mock.Anything, uint(3), uint(7)).Return(ownedLocation(3, 7), nil)
	weatherRepo.On("ListHistory", mock.Anything, uint(3)).Return([]model.HistoricalWeather{}, nil)

	svc := NewWeatherService(locationRepo, weatherRepo)
	snapshots, err := svc.GetHistory(context.Background(), 7, 3)

	assert.NoError(t, err)
	assert.NotNil(t, snapshots)
	assert.Empty(t, snapshots)
}
