// Package storetest provides an in-memory store.Roster for tests.
package storetest

import (
	"context"
	"sort"
	"sync"
	"time"

	"pitchside/backend/internal/models"
	"pitchside/backend/internal/store"
)

// FakeRoster is a functional in-memory Roster. WithTx serializes callers on
// a mutex and rolls state back when fn fails, mirroring the transactional
// guarantees of the Postgres store: concurrent joins observe the same
// lock-then-check-then-insert semantics, and no partial mutation survives
// an error.
type FakeRoster struct {
	mu sync.Mutex

	games        map[uint]models.Game
	venues       map[uint]models.Venue
	users        map[uint]models.User
	participants []models.GameParticipant
	nextPartID   uint

	// FailWith, when set, makes every operation return this error.
	FailWith error
}

func NewFakeRoster() *FakeRoster {
	return &FakeRoster{
		games:  map[uint]models.Game{},
		venues: map[uint]models.Venue{},
		users:  map[uint]models.User{},
	}
}

// region --- Seeding ---

func (f *FakeRoster) AddGame(game models.Game) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.games[game.ID] = game
}

func (f *FakeRoster) AddVenue(venue models.Venue) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.venues[venue.ID] = venue
}

func (f *FakeRoster) AddUser(user models.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.ID] = user
}

func (f *FakeRoster) AddParticipant(p models.GameParticipant) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextPartID++
	p.ID = f.nextPartID
	f.participants = append(f.participants, p)
}

// GameStatus returns the stored status, for asserting transitions.
func (f *FakeRoster) GameStatus(gameID uint) models.GameStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.games[gameID].Status
}

// ParticipantCount returns the current roster size, for assertions.
func (f *FakeRoster) ParticipantCount(gameID uint) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.countParticipants(gameID)
}

// endregion

// WithTx locks the store for the duration of fn and restores the previous
// state when fn returns an error.
func (f *FakeRoster) WithTx(ctx context.Context, fn func(store.Roster) error) error {
	if f.FailWith != nil {
		return f.FailWith
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	snapGames := make(map[uint]models.Game, len(f.games))
	for id, game := range f.games {
		snapGames[id] = game
	}
	snapParts := make([]models.GameParticipant, len(f.participants))
	copy(snapParts, f.participants)
	snapNext := f.nextPartID

	if err := fn(&txRoster{f: f}); err != nil {
		f.games = snapGames
		f.participants = snapParts
		f.nextPartID = snapNext
		return err
	}
	return nil
}

// txRoster exposes the unlocked internals to the function running inside
// WithTx, which already holds the mutex.
type txRoster struct {
	f *FakeRoster
}

func (t *txRoster) WithTx(ctx context.Context, fn func(store.Roster) error) error {
	return fn(t)
}

func (t *txRoster) GetGame(ctx context.Context, gameID uint) (*models.Game, error) {
	return t.f.getGame(gameID)
}

func (t *txRoster) GetGameForUpdate(ctx context.Context, gameID uint) (*models.Game, error) {
	return t.f.getGame(gameID)
}

func (t *txRoster) GetGameWithRefs(ctx context.Context, gameID uint) (*models.Game, error) {
	return t.f.getGameWithRefs(gameID)
}

func (t *txRoster) ListGames(ctx context.Context, filter store.GameFilter) ([]store.GameListItem, error) {
	return t.f.listGames(filter)
}

func (t *txRoster) CreateGame(ctx context.Context, game *models.Game) error {
	return t.f.createGame(game)
}

func (t *txRoster) UpdateGame(ctx context.Context, gameID uint, updates map[string]interface{}) (*models.Game, error) {
	return t.f.updateGame(gameID, updates)
}

func (t *txRoster) DeleteGame(ctx context.Context, gameID uint) error {
	return t.f.deleteGame(gameID)
}

func (t *txRoster) UpdateGameStatus(ctx context.Context, gameID uint, status models.GameStatus) error {
	return t.f.updateGameStatus(gameID, status)
}

func (t *txRoster) RevertFullToOpen(ctx context.Context, gameID uint) (bool, error) {
	return t.f.revertFullToOpen(gameID)
}

func (t *txRoster) CountParticipants(ctx context.Context, gameID uint) (int, error) {
	return t.f.countParticipants(gameID), nil
}

func (t *txRoster) ListParticipants(ctx context.Context, gameID uint) ([]models.GameParticipant, error) {
	return t.f.listParticipants(gameID), nil
}

func (t *txRoster) GetParticipation(ctx context.Context, gameID, userID uint) (*models.GameParticipant, error) {
	return t.f.getParticipation(gameID, userID)
}

func (t *txRoster) InsertParticipation(ctx context.Context, p *models.GameParticipant) error {
	return t.f.insertParticipation(p)
}

func (t *txRoster) DeleteParticipation(ctx context.Context, gameID, userID uint) (bool, error) {
	return t.f.deleteParticipation(gameID, userID), nil
}

func (t *txRoster) GetVenue(ctx context.Context, venueID uint) (*models.Venue, error) {
	return t.f.getVenue(venueID)
}

func (t *txRoster) ListVenues(ctx context.Context) ([]models.Venue, error) {
	return t.f.listVenues(), nil
}

func (t *txRoster) CreateVenue(ctx context.Context, venue *models.Venue) error {
	return t.f.createVenue(venue)
}

func (t *txRoster) GetUser(ctx context.Context, userID uint) (*models.User, error) {
	return t.f.getUser(userID)
}

// region --- Locked pass-throughs for use outside a transaction ---

func (f *FakeRoster) GetGame(ctx context.Context, gameID uint) (*models.Game, error) {
	if f.FailWith != nil {
		return nil, f.FailWith
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.getGame(gameID)
}

func (f *FakeRoster) GetGameForUpdate(ctx context.Context, gameID uint) (*models.Game, error) {
	return f.GetGame(ctx, gameID)
}

func (f *FakeRoster) GetGameWithRefs(ctx context.Context, gameID uint) (*models.Game, error) {
	if f.FailWith != nil {
		return nil, f.FailWith
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.getGameWithRefs(gameID)
}

func (f *FakeRoster) ListGames(ctx context.Context, filter store.GameFilter) ([]store.GameListItem, error) {
	if f.FailWith != nil {
		return nil, f.FailWith
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listGames(filter)
}

func (f *FakeRoster) CreateGame(ctx context.Context, game *models.Game) error {
	if f.FailWith != nil {
		return f.FailWith
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.createGame(game)
}

func (f *FakeRoster) UpdateGame(ctx context.Context, gameID uint, updates map[string]interface{}) (*models.Game, error) {
	if f.FailWith != nil {
		return nil, f.FailWith
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.updateGame(gameID, updates)
}

func (f *FakeRoster) DeleteGame(ctx context.Context, gameID uint) error {
	if f.FailWith != nil {
		return f.FailWith
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.deleteGame(gameID)
}

func (f *FakeRoster) UpdateGameStatus(ctx context.Context, gameID uint, status models.GameStatus) error {
	if f.FailWith != nil {
		return f.FailWith
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.updateGameStatus(gameID, status)
}

func (f *FakeRoster) RevertFullToOpen(ctx context.Context, gameID uint) (bool, error) {
	if f.FailWith != nil {
		return false, f.FailWith
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.revertFullToOpen(gameID)
}

func (f *FakeRoster) CountParticipants(ctx context.Context, gameID uint) (int, error) {
	if f.FailWith != nil {
		return 0, f.FailWith
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.countParticipants(gameID), nil
}

func (f *FakeRoster) ListParticipants(ctx context.Context, gameID uint) ([]models.GameParticipant, error) {
	if f.FailWith != nil {
		return nil, f.FailWith
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listParticipants(gameID), nil
}

func (f *FakeRoster) GetParticipation(ctx context.Context, gameID, userID uint) (*models.GameParticipant, error) {
	if f.FailWith != nil {
		return nil, f.FailWith
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.getParticipation(gameID, userID)
}

func (f *FakeRoster) InsertParticipation(ctx context.Context, p *models.GameParticipant) error {
	if f.FailWith != nil {
		return f.FailWith
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.insertParticipation(p)
}

func (f *FakeRoster) DeleteParticipation(ctx context.Context, gameID, userID uint) (bool, error) {
	if f.FailWith != nil {
		return false, f.FailWith
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.deleteParticipation(gameID, userID), nil
}

func (f *FakeRoster) GetVenue(ctx context.Context, venueID uint) (*models.Venue, error) {
	if f.FailWith != nil {
		return nil, f.FailWith
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.getVenue(venueID)
}

func (f *FakeRoster) ListVenues(ctx context.Context) ([]models.Venue, error) {
	if f.FailWith != nil {
		return nil, f.FailWith
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listVenues(), nil
}

func (f *FakeRoster) CreateVenue(ctx context.Context, venue *models.Venue) error {
	if f.FailWith != nil {
		return f.FailWith
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.createVenue(venue)
}

func (f *FakeRoster) GetUser(ctx context.Context, userID uint) (*models.User, error) {
	if f.FailWith != nil {
		return nil, f.FailWith
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.getUser(userID)
}

// endregion

// region --- Unlocked internals ---

func (f *FakeRoster) getGame(gameID uint) (*models.Game, error) {
	game, ok := f.games[gameID]
	if !ok {
		return nil, models.ErrGameNotFound
	}
	return &game, nil
}

func (f *FakeRoster) getGameWithRefs(gameID uint) (*models.Game, error) {
	game, err := f.getGame(gameID)
	if err != nil {
		return nil, err
	}
	game.Venue = f.venues[game.VenueID]
	game.Organizer = f.users[game.OrganizerID]
	return game, nil
}

func (f *FakeRoster) listGames(filter store.GameFilter) ([]store.GameListItem, error) {
	var games []models.Game
	for _, game := range f.games {
		if filter.Status != "" && game.Status != filter.Status {
			continue
		}
		if filter.SkillLevel != "" && game.SkillLevel != filter.SkillLevel {
			continue
		}
		if filter.VenueID != 0 && game.VenueID != filter.VenueID {
			continue
		}
		if filter.DateFrom != nil && game.DatetimeStart.Before(*filter.DateFrom) {
			continue
		}
		if filter.DateTo != nil && game.DatetimeStart.After(*filter.DateTo) {
			continue
		}
		game.Venue = f.venues[game.VenueID]
		game.Organizer = f.users[game.OrganizerID]
		games = append(games, game)
	}
	sort.Slice(games, func(i, j int) bool {
		return games[i].DatetimeStart.Before(games[j].DatetimeStart)
	})

	if filter.Offset > 0 {
		if filter.Offset >= len(games) {
			games = nil
		} else {
			games = games[filter.Offset:]
		}
	}
	if filter.Limit > 0 && len(games) > filter.Limit {
		games = games[:filter.Limit]
	}

	items := make([]store.GameListItem, 0, len(games))
	for _, game := range games {
		items = append(items, store.GameListItem{
			Game:          game,
			PlayersJoined: f.countParticipants(game.ID),
		})
	}
	return items, nil
}

func (f *FakeRoster) createGame(game *models.Game) error {
	if game.ID == 0 {
		game.ID = uint(len(f.games) + 1)
	}
	now := time.Now()
	game.CreatedAt = now
	game.UpdatedAt = now
	f.games[game.ID] = *game
	return nil
}

func (f *FakeRoster) updateGame(gameID uint, updates map[string]interface{}) (*models.Game, error) {
	game, ok := f.games[gameID]
	if !ok {
		return nil, models.ErrGameNotFound
	}
	for column, value := range updates {
		switch column {
		case "title":
			game.Title = value.(string)
		case "venue_id":
			game.VenueID = value.(uint)
		case "datetime_start":
			game.DatetimeStart = value.(time.Time)
		case "duration_mins":
			game.DurationMins = value.(int)
		case "fee_per_player":
			game.FeePerPlayer = value.(float64)
		case "max_players":
			game.MaxPlayers = value.(int)
		case "skill_level":
			game.SkillLevel = value.(string)
		case "game_type":
			game.GameType = value.(string)
		case "description":
			game.Description = value.(string)
		case "rules":
			game.Rules = value.(string)
		case "status":
			game.Status = value.(models.GameStatus)
		}
	}
	game.UpdatedAt = time.Now()
	f.games[gameID] = game
	return &game, nil
}

func (f *FakeRoster) deleteGame(gameID uint) error {
	if _, ok := f.games[gameID]; !ok {
		return models.ErrGameNotFound
	}
	delete(f.games, gameID)
	// cascade
	kept := f.participants[:0]
	for _, p := range f.participants {
		if p.GameID != gameID {
			kept = append(kept, p)
		}
	}
	f.participants = kept
	return nil
}

func (f *FakeRoster) updateGameStatus(gameID uint, status models.GameStatus) error {
	game, ok := f.games[gameID]
	if !ok {
		return models.ErrGameNotFound
	}
	game.Status = status
	f.games[gameID] = game
	return nil
}

func (f *FakeRoster) revertFullToOpen(gameID uint) (bool, error) {
	game, ok := f.games[gameID]
	if !ok || game.Status != models.StatusFull {
		return false, nil
	}
	game.Status = models.StatusOpen
	f.games[gameID] = game
	return true, nil
}

func (f *FakeRoster) countParticipants(gameID uint) int {
	count := 0
	for _, p := range f.participants {
		if p.GameID == gameID {
			count++
		}
	}
	return count
}

func (f *FakeRoster) listParticipants(gameID uint) []models.GameParticipant {
	var result []models.GameParticipant
	for _, p := range f.participants {
		if p.GameID == gameID {
			p.User = f.users[p.UserID]
			result = append(result, p)
		}
	}
	// team ascending with unassigned last, then join time
	sort.SliceStable(result, func(i, j int) bool {
		ti, tj := result[i].Team, result[j].Team
		switch {
		case ti == nil && tj == nil:
		case ti == nil:
			return false
		case tj == nil:
			return true
		case *ti != *tj:
			return *ti < *tj
		}
		return result[i].JoinedAt.Before(result[j].JoinedAt)
	})
	return result
}

func (f *FakeRoster) getParticipation(gameID, userID uint) (*models.GameParticipant, error) {
	for _, p := range f.participants {
		if p.GameID == gameID && p.UserID == userID {
			participation := p
			return &participation, nil
		}
	}
	return nil, models.ErrNotRegistered
}

func (f *FakeRoster) insertParticipation(p *models.GameParticipant) error {
	for _, existing := range f.participants {
		if existing.GameID == p.GameID && existing.UserID == p.UserID {
			return models.ErrAlreadyJoined
		}
	}
	f.nextPartID++
	p.ID = f.nextPartID
	if p.JoinedAt.IsZero() {
		p.JoinedAt = time.Now()
	}
	f.participants = append(f.participants, *p)
	return nil
}

func (f *FakeRoster) deleteParticipation(gameID, userID uint) bool {
	for i, p := range f.participants {
		if p.GameID == gameID && p.UserID == userID {
			f.participants = append(f.participants[:i], f.participants[i+1:]...)
			return true
		}
	}
	return false
}

func (f *FakeRoster) getVenue(venueID uint) (*models.Venue, error) {
	venue, ok := f.venues[venueID]
	if !ok {
		return nil, models.ErrVenueNotFound
	}
	return &venue, nil
}

func (f *FakeRoster) listVenues() []models.Venue {
	venues := make([]models.Venue, 0, len(f.venues))
	for _, venue := range f.venues {
		venues = append(venues, venue)
	}
	sort.Slice(venues, func(i, j int) bool { return venues[i].Name < venues[j].Name })
	return venues
}

func (f *FakeRoster) createVenue(venue *models.Venue) error {
	if venue.ID == 0 {
		venue.ID = uint(len(f.venues) + 1)
	}
	f.venues[venue.ID] = *venue
	return nil
}

func (f *FakeRoster) getUser(userID uint) (*models.User, error) {
	user, ok := f.users[userID]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	return &user, nil
}

// endregion
