package store

import (
	"context"
	"time"

	"pitchside/backend/internal/models"
)

// GameFilter narrows ListGames. Zero values mean "no filter"; Status
// defaults are applied by the caller.
type GameFilter struct {
	SkillLevel string
	VenueID    uint
	Status     models.GameStatus
	DateFrom   *time.Time
	DateTo     *time.Time
	Limit      int
	Offset     int
}

// GameListItem pairs a game with its occupancy, counted from the current
// participation rows rather than any stored aggregate.
type GameListItem struct {
	Game          models.Game
	PlayersJoined int
}

// Roster is the persistence contract for games, venues, users and
// participation rows.
//
// WithTx runs fn against a transactional view of the same store; every
// mutation fn performs commits or rolls back as one unit. Inside a
// transaction GetGameForUpdate additionally locks the game row, so a
// status/count check followed by an insert is race-free.
type Roster interface {
	WithTx(ctx context.Context, fn func(Roster) error) error

	GetGame(ctx context.Context, gameID uint) (*models.Game, error)
	GetGameForUpdate(ctx context.Context, gameID uint) (*models.Game, error)
	GetGameWithRefs(ctx context.Context, gameID uint) (*models.Game, error)
	ListGames(ctx context.Context, f GameFilter) ([]GameListItem, error)
	CreateGame(ctx context.Context, game *models.Game) error
	UpdateGame(ctx context.Context, gameID uint, updates map[string]interface{}) (*models.Game, error)
	DeleteGame(ctx context.Context, gameID uint) error
	UpdateGameStatus(ctx context.Context, gameID uint, status models.GameStatus) error
	// RevertFullToOpen flips status back to open only when it is currently
	// full. Returns true when a row changed.
	RevertFullToOpen(ctx context.Context, gameID uint) (bool, error)

	CountParticipants(ctx context.Context, gameID uint) (int, error)
	// ListParticipants returns the roster joined with user attributes,
	// ordered by team then join time.
	ListParticipants(ctx context.Context, gameID uint) ([]models.GameParticipant, error)
	GetParticipation(ctx context.Context, gameID, userID uint) (*models.GameParticipant, error)
	// InsertParticipation returns models.ErrAlreadyJoined when a row for the
	// (game, user) pair already exists.
	InsertParticipation(ctx context.Context, p *models.GameParticipant) error
	// DeleteParticipation reports whether a row was removed.
	DeleteParticipation(ctx context.Context, gameID, userID uint) (bool, error)

	GetVenue(ctx context.Context, venueID uint) (*models.Venue, error)
	ListVenues(ctx context.Context) ([]models.Venue, error)
	CreateVenue(ctx context.Context, venue *models.Venue) error

	GetUser(ctx context.Context, userID uint) (*models.User, error)
}
