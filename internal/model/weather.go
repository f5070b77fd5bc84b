package model

import "time"

// Reading is the shape shared by all three snapshot variants: one observed or
// forecast data point for a location at a unix timestamp, metric units.
type Reading struct {
	Timestamp   int64   `json:"timestamp" gorm:"not null;uniqueIndex:uniq_loc_ts"`
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	Pressure    float64 `json:"pressure"`
	Humidity    float64 `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
	WindDeg     int     `json:"wind_deg"`
	Description string  `json:"description" gorm:"size:255"`
	Icon        string  `json:"icon" gorm:"size:16"`
}

// CurrentWeather stores observed conditions. Only the most recent row per
// location is served by the API.
type CurrentWeather struct {
	ID         uint `json:"id" gorm:"primaryKey"`
	LocationID uint `json:"location_id" gorm:"not null;index;uniqueIndex:uniq_loc_ts"`
	Reading
	CreatedAt time.Time `json:"-"`
}

// ForecastWeather stores one forecast point per row, served in ascending
// timestamp order.
type ForecastWeather struct {
	ID         uint `json:"id" gorm:"primaryKey"`
	LocationID uint `json:"location_id" gorm:"not null;index;uniqueIndex:uniq_loc_ts"`
	Reading
	CreatedAt time.Time `json:"-"`
}

// HistoricalWeather stores past observations, served newest first.
type HistoricalWeather struct {
	ID         uint `json:"id" gorm:"primaryKey"`
	LocationID uint `json:"location_id" gorm:"not null;index;uniqueIndex:uniq_loc_ts"`
	Reading
	CreatedAt time.Time `json:"-"`
}
