package service

import (
	"context"
	"errors"
	"time"

	"pitchside/backend/internal/models"
	"pitchside/backend/internal/store"

	"github.com/sirupsen/logrus"
)

// leaveCutoff is how close to kickoff a participant may still withdraw.
const leaveCutoff = 2 * time.Hour

// GameService owns the roster protocol: joins, leaves, the capacity/status
// transitions that go with them, and the game read models.
type GameService struct {
	roster store.Roster
	now    func() time.Time
}

func NewGameService(roster store.Roster) *GameService {
	return &GameService{
		roster: roster,
		now:    time.Now,
	}
}

// JoinRequest carries a join attempt. Team and Position are optional; a nil
// team leaves the player unassigned.
type JoinRequest struct {
	GameID   uint
	UserID   uint
	Team     *models.Team
	Position *string
}

// Join registers a user for a game.
//
// The whole operation runs in one transaction with the game row locked, so
// the status check, the capacity check and the insert form a single atomic
// unit: two concurrent joins for the last slot serialize on the lock and
// exactly one wins. A duplicate (game, user) insert that slips past the
// lock path is stopped by the store's unique constraint and comes back as
// ErrAlreadyJoined.
func (s *GameService) Join(ctx context.Context, req JoinRequest) (*models.GameParticipant, error) {
	var created *models.GameParticipant

	err := s.roster.WithTx(ctx, func(tx store.Roster) error {
		game, err := tx.GetGameForUpdate(ctx, req.GameID)
		if err != nil {
			return err
		}
		if game.Status != models.StatusOpen {
			// A full game reports capacity, not a generic state error.
			if game.Status == models.StatusFull {
				return models.ErrGameFull
			}
			return models.ErrGameNotOpen
		}

		count, err := tx.CountParticipants(ctx, req.GameID)
		if err != nil {
			return err
		}
		if count >= game.MaxPlayers {
			return models.ErrGameFull
		}

		participant := &models.GameParticipant{
			GameID:        req.GameID,
			UserID:        req.UserID,
			Team:          req.Team,
			Position:      req.Position,
			PaymentStatus: models.PaymentPending,
		}
		if err := tx.InsertParticipation(ctx, participant); err != nil {
			return err
		}

		if next := models.StatusAfterJoin(count+1, game.MaxPlayers); next != game.Status {
			if err := tx.UpdateGameStatus(ctx, req.GameID, next); err != nil {
				return err
			}
		}

		created = participant
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"game_id": req.GameID,
		"user_id": req.UserID,
	}).Info("user joined game")

	return created, nil
}

// Leave withdraws a user from a game. The participation delete and the
// full→open status revert commit together; the revert only fires when the
// game was full, matching the two-state toggle of the open/full band.
func (s *GameService) Leave(ctx context.Context, gameID, userID uint) error {
	err := s.roster.WithTx(ctx, func(tx store.Roster) error {
		game, err := tx.GetGameForUpdate(ctx, gameID)
		if err != nil {
			// A game that does not exist has no roster to leave.
			if errors.Is(err, models.ErrGameNotFound) {
				return models.ErrNotRegistered
			}
			return err
		}

		if _, err := tx.GetParticipation(ctx, gameID, userID); err != nil {
			return err
		}
		if game.Status.Started() {
			return models.ErrGameStarted
		}
		if game.DatetimeStart.Sub(s.now()) < leaveCutoff {
			return models.ErrTooLateToLeave
		}

		removed, err := tx.DeleteParticipation(ctx, gameID, userID)
		if err != nil {
			return err
		}
		if !removed {
			return models.ErrNotRegistered
		}

		if game.Status == models.StatusFull {
			if _, err := tx.RevertFullToOpen(ctx, gameID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"game_id": gameID,
		"user_id": userID,
	}).Info("user left game")

	return nil
}

// GameDetail is the consistent read model for one game: the game with its
// references plus the full roster. PlayersJoined is the row count, never a
// stored aggregate.
type GameDetail struct {
	Game          models.Game
	Participants  []models.GameParticipant
	PlayersJoined int
}

func (s *GameService) GetGameDetail(ctx context.Context, gameID uint) (*GameDetail, error) {
	game, err := s.roster.GetGameWithRefs(ctx, gameID)
	if err != nil {
		return nil, err
	}

	participants, err := s.roster.ListParticipants(ctx, gameID)
	if err != nil {
		return nil, err
	}

	return &GameDetail{
		Game:          *game,
		Participants:  participants,
		PlayersJoined: len(participants),
	}, nil
}

func (s *GameService) ListGames(ctx context.Context, f store.GameFilter) ([]store.GameListItem, error) {
	return s.roster.ListGames(ctx, f)
}

// CreateGameInput holds the organizer-supplied fields for a new game.
type CreateGameInput struct {
	Title         string
	VenueID       uint
	OrganizerID   uint
	DatetimeStart time.Time
	DurationMins  int
	FeePerPlayer  float64
	MaxPlayers    int
	SkillLevel    string
	GameType      string
	Description   string
	Rules         string
}

func (s *GameService) CreateGame(ctx context.Context, in CreateGameInput) (*models.Game, error) {
	if _, err := s.roster.GetVenue(ctx, in.VenueID); err != nil {
		return nil, err
	}
	if _, err := s.roster.GetUser(ctx, in.OrganizerID); err != nil {
		return nil, err
	}

	if in.DurationMins == 0 {
		in.DurationMins = 90
	}
	if in.GameType == "" {
		in.GameType = "casual"
	}

	game := &models.Game{
		Title:         in.Title,
		VenueID:       in.VenueID,
		OrganizerID:   in.OrganizerID,
		DatetimeStart: in.DatetimeStart,
		DurationMins:  in.DurationMins,
		FeePerPlayer:  in.FeePerPlayer,
		MaxPlayers:    in.MaxPlayers,
		SkillLevel:    in.SkillLevel,
		GameType:      in.GameType,
		Description:   in.Description,
		Rules:         in.Rules,
		Status:        models.StatusOpen,
	}
	if err := s.roster.CreateGame(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

// UpdateGameInput carries a partial update; nil fields are left untouched.
// Status is included here because lifecycle transitions (in_progress,
// completed, cancelled) are driven externally, not by the roster.
type UpdateGameInput struct {
	Title         *string
	VenueID       *uint
	DatetimeStart *time.Time
	DurationMins  *int
	FeePerPlayer  *float64
	MaxPlayers    *int
	SkillLevel    *string
	GameType      *string
	Description   *string
	Rules         *string
	Status        *models.GameStatus
}

func (s *GameService) UpdateGame(ctx context.Context, gameID uint, in UpdateGameInput) (*models.Game, error) {
	updates := map[string]interface{}{}
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.VenueID != nil {
		if _, err := s.roster.GetVenue(ctx, *in.VenueID); err != nil {
			return nil, err
		}
		updates["venue_id"] = *in.VenueID
	}
	if in.DatetimeStart != nil {
		updates["datetime_start"] = *in.DatetimeStart
	}
	if in.DurationMins != nil {
		updates["duration_mins"] = *in.DurationMins
	}
	if in.FeePerPlayer != nil {
		updates["fee_per_player"] = *in.FeePerPlayer
	}
	if in.MaxPlayers != nil {
		updates["max_players"] = *in.MaxPlayers
	}
	if in.SkillLevel != nil {
		updates["skill_level"] = *in.SkillLevel
	}
	if in.GameType != nil {
		updates["game_type"] = *in.GameType
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Rules != nil {
		updates["rules"] = *in.Rules
	}
	if in.Status != nil {
		updates["status"] = *in.Status
	}

	if len(updates) == 0 {
		return s.roster.GetGame(ctx, gameID)
	}
	return s.roster.UpdateGame(ctx, gameID, updates)
}

// DeleteGame removes a game that has not started; participation rows go
// with it via the store's cascade.
func (s *GameService) DeleteGame(ctx context.Context, gameID uint) error {
	game, err := s.roster.GetGame(ctx, gameID)
	if err != nil {
		return err
	}
	if game.Status.Started() {
		return models.ErrGameStarted
	}
	return s.roster.DeleteGame(ctx, gameID)
}
