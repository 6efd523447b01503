package models

import "time"

// Venue represents a pitch or facility games are scheduled at.
// Venues are referenced by games, never embedded in them.
type Venue struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:255;not null"`
	Location    string `gorm:"size:512"`
	Latitude    *float64
	Longitude   *float64
	ImageURL    string `gorm:"size:512"`
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
