package models

import "time"

// User represents a player in the system. Identity is established
// upstream; the backend only stores profile attributes.
type User struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"size:255;not null"`
	AvatarURL   string  `gorm:"size:512"`
	Rating      float64 `gorm:"not null;default:0"`
	GamesPlayed int     `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
