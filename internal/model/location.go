package model

import "time"

// FavoriteLocation is a user-owned place to track weather for. Every read or
// mutation must filter by both the record id and the owning user id.
type FavoriteLocation struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"-" gorm:"not null;index"`
	LocationName string    `json:"location_name" gorm:"size:255;not null"`
	Latitude     float64   `json:"latitude" gorm:"not null"`
	Longitude    float64   `json:"longitude" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
