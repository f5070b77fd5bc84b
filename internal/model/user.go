package model

import "time"

// User represents a registered account. Passwords are stored as a salted
// SHA-256 digest alongside the per-user salt; neither field is ever
// serialized in API responses.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:64;not null"`
	Salt         string    `json:"-" gorm:"size:32;not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
