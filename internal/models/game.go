package models

import "time"

// GameStatus defines the lifecycle state of a game.
type GameStatus string

const (
	// StatusOpen means the game is accepting new players.
	StatusOpen GameStatus = "open"

	// StatusFull means every slot is taken. A successful leave moves the
	// game back to StatusOpen.
	StatusFull GameStatus = "full"

	// The remaining states are driven by the organizer, not by the roster.
	// No join or leave is allowed out of them.
	StatusInProgress GameStatus = "in_progress"
	StatusCompleted  GameStatus = "completed"
	StatusCancelled  GameStatus = "cancelled"
)

// AllowsRosterChanges reports whether participants may still join or leave.
func (s GameStatus) AllowsRosterChanges() bool {
	return s == StatusOpen || s == StatusFull
}

// Started reports whether the game has begun or finished. Leaving and
// deletion are blocked once this is true.
func (s GameStatus) Started() bool {
	return s == StatusInProgress || s == StatusCompleted
}

// StatusAfterJoin returns the status a game carries once the roster holds
// playersAfter participants out of maxPlayers slots.
func StatusAfterJoin(playersAfter, maxPlayers int) GameStatus {
	if playersAfter >= maxPlayers {
		return StatusFull
	}
	return StatusOpen
}

// Game represents a scheduled match at a venue.
type Game struct {
	ID            uint       `gorm:"primaryKey"`
	Title         string     `gorm:"size:255"`
	VenueID       uint       `gorm:"not null;index"`
	OrganizerID   uint       `gorm:"not null;index"`
	DatetimeStart time.Time  `gorm:"not null;index"`
	DurationMins  int        `gorm:"not null;default:90"`
	FeePerPlayer  float64    `gorm:"not null;default:0"`
	MaxPlayers    int        `gorm:"not null"`
	SkillLevel    string     `gorm:"size:50;index"`
	GameType      string     `gorm:"size:50;not null;default:'casual'"`
	Description   string
	Rules         string
	Status        GameStatus `gorm:"size:20;not null;default:'open';index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Venue     Venue `gorm:"foreignKey:VenueID"`
	Organizer User  `gorm:"foreignKey:OrganizerID"`
}
