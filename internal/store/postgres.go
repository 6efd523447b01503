package store

import (
	"context"
	"errors"
	"fmt"

	"pitchside/backend/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const pgUniqueViolation = "23505"

// GormRoster implements Roster on a GORM Postgres handle.
type GormRoster struct {
	db *gorm.DB
}

func NewGormRoster(db *gorm.DB) *GormRoster {
	return &GormRoster{db: db}
}

// WithTx runs fn inside a database transaction. The Roster passed to fn is
// bound to that transaction, so locks taken by GetGameForUpdate hold until
// fn returns.
func (s *GormRoster) WithTx(ctx context.Context, fn func(Roster) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormRoster{db: tx})
	})
}

// region --- Games ---

func (s *GormRoster) GetGame(ctx context.Context, gameID uint) (*models.Game, error) {
	var game models.Game
	if err := s.db.WithContext(ctx).First(&game, gameID).Error; err != nil {
		return nil, translateGameErr(err)
	}
	return &game, nil
}

// GetGameForUpdate fetches the game under a row lock (SELECT ... FOR
// UPDATE). Meaningful only inside WithTx; concurrent joins for the same
// game serialize on this lock.
func (s *GormRoster) GetGameForUpdate(ctx context.Context, gameID uint) (*models.Game, error) {
	var game models.Game
	err := s.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&game, gameID).Error
	if err != nil {
		return nil, translateGameErr(err)
	}
	return &game, nil
}

func (s *GormRoster) GetGameWithRefs(ctx context.Context, gameID uint) (*models.Game, error) {
	var game models.Game
	err := s.db.WithContext(ctx).
		Preload("Venue").
		Preload("Organizer").
		First(&game, gameID).Error
	if err != nil {
		return nil, translateGameErr(err)
	}
	return &game, nil
}

func (s *GormRoster) ListGames(ctx context.Context, f GameFilter) ([]GameListItem, error) {
	query := s.db.WithContext(ctx).Model(&models.Game{}).
		Preload("Venue").
		Preload("Organizer")

	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.SkillLevel != "" {
		query = query.Where("skill_level = ?", f.SkillLevel)
	}
	if f.VenueID != 0 {
		query = query.Where("venue_id = ?", f.VenueID)
	}
	if f.DateFrom != nil {
		query = query.Where("datetime_start >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		query = query.Where("datetime_start <= ?", *f.DateTo)
	}

	var games []models.Game
	err := query.Order("datetime_start ASC").
		Offset(f.Offset).Limit(f.Limit).
		Find(&games).Error
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}

	counts, err := s.participantCounts(ctx, games)
	if err != nil {
		return nil, err
	}

	items := make([]GameListItem, 0, len(games))
	for _, game := range games {
		items = append(items, GameListItem{
			Game:          game,
			PlayersJoined: counts[game.ID],
		})
	}
	return items, nil
}

// participantCounts counts current roster rows per game in one grouped
// query. Counting the rows, not a stored aggregate, keeps occupancy from
// drifting.
func (s *GormRoster) participantCounts(ctx context.Context, games []models.Game) (map[uint]int, error) {
	counts := make(map[uint]int, len(games))
	if len(games) == 0 {
		return counts, nil
	}

	ids := make([]uint, 0, len(games))
	for _, game := range games {
		ids = append(ids, game.ID)
	}

	var rows []struct {
		GameID uint
		Total  int
	}
	err := s.db.WithContext(ctx).Model(&models.GameParticipant{}).
		Select("game_id, COUNT(*) AS total").
		Where("game_id IN ?", ids).
		Group("game_id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count participants: %w", err)
	}

	for _, row := range rows {
		counts[row.GameID] = row.Total
	}
	return counts, nil
}

func (s *GormRoster) CreateGame(ctx context.Context, game *models.Game) error {
	if err := s.db.WithContext(ctx).Create(game).Error; err != nil {
		return fmt.Errorf("create game: %w", err)
	}
	return nil
}

func (s *GormRoster) UpdateGame(ctx context.Context, gameID uint, updates map[string]interface{}) (*models.Game, error) {
	result := s.db.WithContext(ctx).Model(&models.Game{}).
		Where("id = ?", gameID).
		Updates(updates)
	if result.Error != nil {
		return nil, fmt.Errorf("update game: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, models.ErrGameNotFound
	}
	return s.GetGame(ctx, gameID)
}

// DeleteGame removes the game; the foreign key cascades to its
// participation rows.
func (s *GormRoster) DeleteGame(ctx context.Context, gameID uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Game{}, gameID)
	if result.Error != nil {
		return fmt.Errorf("delete game: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return models.ErrGameNotFound
	}
	return nil
}

func (s *GormRoster) UpdateGameStatus(ctx context.Context, gameID uint, status models.GameStatus) error {
	err := s.db.WithContext(ctx).Model(&models.Game{}).
		Where("id = ?", gameID).
		Update("status", status).Error
	if err != nil {
		return fmt.Errorf("update game status: %w", err)
	}
	return nil
}

func (s *GormRoster) RevertFullToOpen(ctx context.Context, gameID uint) (bool, error) {
	result := s.db.WithContext(ctx).Model(&models.Game{}).
		Where("id = ? AND status = ?", gameID, models.StatusFull).
		Update("status", models.StatusOpen)
	if result.Error != nil {
		return false, fmt.Errorf("revert game status: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// endregion

// region --- Participants ---

func (s *GormRoster) CountParticipants(ctx context.Context, gameID uint) (int, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.GameParticipant{}).
		Where("game_id = ?", gameID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count participants: %w", err)
	}
	return int(count), nil
}

func (s *GormRoster) ListParticipants(ctx context.Context, gameID uint) ([]models.GameParticipant, error) {
	var participants []models.GameParticipant
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("game_id = ?", gameID).
		Order("team, joined_at").
		Find(&participants).Error
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	return participants, nil
}

func (s *GormRoster) GetParticipation(ctx context.Context, gameID, userID uint) (*models.GameParticipant, error) {
	var p models.GameParticipant
	err := s.db.WithContext(ctx).
		Where("game_id = ? AND user_id = ?", gameID, userID).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotRegistered
		}
		return nil, fmt.Errorf("get participation: %w", err)
	}
	return &p, nil
}

// InsertParticipation creates the row. The unique index on (game_id,
// user_id) is the authoritative duplicate guard; its violation is an
// expected race outcome and maps to ErrAlreadyJoined.
func (s *GormRoster) InsertParticipation(ctx context.Context, p *models.GameParticipant) error {
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		if isUniqueViolation(err) {
			return models.ErrAlreadyJoined
		}
		return fmt.Errorf("insert participation: %w", err)
	}
	return nil
}

func (s *GormRoster) DeleteParticipation(ctx context.Context, gameID, userID uint) (bool, error) {
	result := s.db.WithContext(ctx).
		Where("game_id = ? AND user_id = ?", gameID, userID).
		Delete(&models.GameParticipant{})
	if result.Error != nil {
		return false, fmt.Errorf("delete participation: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// endregion

// region --- Venues & users ---

func (s *GormRoster) GetVenue(ctx context.Context, venueID uint) (*models.Venue, error) {
	var venue models.Venue
	if err := s.db.WithContext(ctx).First(&venue, venueID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrVenueNotFound
		}
		return nil, fmt.Errorf("get venue: %w", err)
	}
	return &venue, nil
}

func (s *GormRoster) ListVenues(ctx context.Context) ([]models.Venue, error) {
	var venues []models.Venue
	if err := s.db.WithContext(ctx).Order("name").Find(&venues).Error; err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	return venues, nil
}

func (s *GormRoster) CreateVenue(ctx context.Context, venue *models.Venue) error {
	if err := s.db.WithContext(ctx).Create(venue).Error; err != nil {
		return fmt.Errorf("create venue: %w", err)
	}
	return nil
}

func (s *GormRoster) GetUser(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

// endregion

func translateGameErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrGameNotFound
	}
	return fmt.Errorf("get game: %w", err)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
