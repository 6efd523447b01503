package models

import "time"

// Team labels a participant's side. Unassigned participants carry a nil team.
type Team string

const (
	TeamA Team = "A"
	TeamB Team = "B"
)

// PaymentStatus tracks whether a participant has paid the game fee.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// GameParticipant is a user's reserved slot in a game.
//
// The unique index on (GameID, UserID) is the authoritative guard against
// duplicate joins: concurrent requests for the same pair race on it and the
// loser surfaces as ErrAlreadyJoined. The foreign key on GameID cascades so
// deleting a game removes its roster.
type GameParticipant struct {
	ID            uint          `gorm:"primaryKey"`
	GameID        uint          `gorm:"not null;uniqueIndex:idx_game_user"`
	UserID        uint          `gorm:"not null;uniqueIndex:idx_game_user"`
	Team          *Team         `gorm:"size:1"`
	Position      *string       `gorm:"size:50"`
	PaymentStatus PaymentStatus `gorm:"size:20;not null;default:'pending'"`
	JoinedAt      time.Time     `gorm:"not null;autoCreateTime"`

	Game Game `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
	User User `gorm:"foreignKey:UserID"`
}
