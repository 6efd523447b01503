package handler

import (
	"net/http"
	"strconv"
	"time"

	"pitchside/backend/internal/models"
	"pitchside/backend/internal/service"
	"pitchside/backend/internal/store"

	"github.com/gin-gonic/gin"
)

type GameHandler struct {
	games *service.GameService
}

func NewGameHandler(games *service.GameService) *GameHandler {
	return &GameHandler{games: games}
}

// region --- DTOs ---

type CreateGameInput struct {
	Title         string    `json:"title"`
	VenueID       uint      `json:"venueId" binding:"required"`
	OrganizerID   uint      `json:"organizerId" binding:"required"`
	DatetimeStart time.Time `json:"datetimeStart" binding:"required"`
	DurationMins  int       `json:"durationMinutes"`
	FeePerPlayer  float64   `json:"feePerPlayer"`
	MaxPlayers    int       `json:"maxPlayers" binding:"required,min=2"`
	SkillLevel    string    `json:"skillLevel"`
	GameType      string    `json:"gameType"`
	Description   string    `json:"description"`
	Rules         string    `json:"rules"`
}

type UpdateGameInput struct {
	Title         *string            `json:"title"`
	VenueID       *uint              `json:"venueId"`
	DatetimeStart *time.Time         `json:"datetimeStart"`
	DurationMins  *int               `json:"durationMinutes"`
	FeePerPlayer  *float64           `json:"feePerPlayer"`
	MaxPlayers    *int               `json:"maxPlayers" binding:"omitempty,min=2"`
	SkillLevel    *string            `json:"skillLevel"`
	GameType      *string            `json:"gameType"`
	Description   *string            `json:"description"`
	Rules         *string            `json:"rules"`
	Status        *models.GameStatus `json:"status" binding:"omitempty,oneof=open full in_progress completed cancelled"`
}

type GameResponse struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	VenueID       uint      `json:"venueId"`
	OrganizerID   uint      `json:"organizerId"`
	DateTime      time.Time `json:"dateTime"`
	Duration      int       `json:"duration"`
	Fee           float64   `json:"fee"`
	MaxPlayers    int       `json:"maxPlayers"`
	Level         string    `json:"level"`
	GameType      string    `json:"gameType"`
	Description   string    `json:"description"`
	Rules         string    `json:"rules"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func newGameResponse(game models.Game) GameResponse {
	return GameResponse{
		ID:          game.ID,
		Title:       game.Title,
		VenueID:     game.VenueID,
		OrganizerID: game.OrganizerID,
		DateTime:    game.DatetimeStart,
		Duration:    game.DurationMins,
		Fee:         game.FeePerPlayer,
		MaxPlayers:  game.MaxPlayers,
		Level:       game.SkillLevel,
		GameType:    game.GameType,
		Description: game.Description,
		Rules:       game.Rules,
		Status:      string(game.Status),
		CreatedAt:   game.CreatedAt,
		UpdatedAt:   game.UpdatedAt,
	}
}

// PlayerResponse is a roster entry joined with user display attributes.
// Missing numeric profile fields come back as 0, never null.
type PlayerResponse struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Avatar        string  `json:"avatar"`
	Position      *string `json:"position"`
	PaymentStatus string  `json:"paymentStatus"`
	Rating        float64 `json:"rating"`
	GamesPlayed   int     `json:"gamesPlayed"`
}

func newPlayerResponse(p models.GameParticipant) PlayerResponse {
	return PlayerResponse{
		ID:            p.UserID,
		Name:          p.User.Name,
		Avatar:        p.User.AvatarURL,
		Position:      p.Position,
		PaymentStatus: string(p.PaymentStatus),
		Rating:        p.User.Rating,
		GamesPlayed:   p.User.GamesPlayed,
	}
}

type TeamsResponse struct {
	A          []PlayerResponse `json:"A"`
	B          []PlayerResponse `json:"B"`
	Unassigned []PlayerResponse `json:"unassigned"`
}

type GameVenueResponse struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

type OrganizerResponse struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type GameDetailResponse struct {
	ID            uint              `json:"id"`
	Title         string            `json:"title"`
	Venue         GameVenueResponse `json:"venue"`
	Organizer     OrganizerResponse `json:"organizer"`
	DateTime      time.Time         `json:"dateTime"`
	Duration      int               `json:"duration"`
	Fee           float64           `json:"fee"`
	MaxPlayers    int               `json:"maxPlayers"`
	Level         string            `json:"level"`
	GameType      string            `json:"gameType"`
	Description   string            `json:"description"`
	Rules         string            `json:"rules"`
	Status        string            `json:"status"`
	Teams         TeamsResponse     `json:"teams"`
	PlayersJoined int               `json:"playersJoined"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

func newGameDetailResponse(detail *service.GameDetail) GameDetailResponse {
	// Partition the roster by team label, keeping the store's
	// team-then-join-time order within each partition.
	teams := TeamsResponse{
		A:          []PlayerResponse{},
		B:          []PlayerResponse{},
		Unassigned: []PlayerResponse{},
	}
	for _, p := range detail.Participants {
		player := newPlayerResponse(p)
		switch {
		case p.Team != nil && *p.Team == models.TeamA:
			teams.A = append(teams.A, player)
		case p.Team != nil && *p.Team == models.TeamB:
			teams.B = append(teams.B, player)
		default:
			teams.Unassigned = append(teams.Unassigned, player)
		}
	}

	game := detail.Game
	return GameDetailResponse{
		ID:    game.ID,
		Title: game.Title,
		Venue: GameVenueResponse{
			ID:          game.Venue.ID,
			Name:        game.Venue.Name,
			Location:    game.Venue.Location,
			Image:       game.Venue.ImageURL,
			Description: game.Venue.Description,
			Latitude:    game.Venue.Latitude,
			Longitude:   game.Venue.Longitude,
		},
		Organizer: OrganizerResponse{
			ID:     game.Organizer.ID,
			Name:   game.Organizer.Name,
			Avatar: game.Organizer.AvatarURL,
		},
		DateTime:      game.DatetimeStart,
		Duration:      game.DurationMins,
		Fee:           game.FeePerPlayer,
		MaxPlayers:    game.MaxPlayers,
		Level:         game.SkillLevel,
		GameType:      game.GameType,
		Description:   game.Description,
		Rules:         game.Rules,
		Status:        string(game.Status),
		Teams:         teams,
		PlayersJoined: detail.PlayersJoined,
		CreatedAt:     game.CreatedAt,
		UpdatedAt:     game.UpdatedAt,
	}
}

// GameListEntry is the flattened projection used by the games list.
type GameListEntry struct {
	ID            uint         `json:"id"`
	Title         string       `json:"title"`
	Venue         string       `json:"venue"`
	VenueImage    string       `json:"venueImage"`
	DateTime      time.Time    `json:"dateTime"`
	Fee           float64      `json:"fee"`
	Level         string       `json:"level"`
	PlayersJoined int          `json:"playersJoined"`
	MaxPlayers    int          `json:"maxPlayers"`
	Status        string       `json:"status"`
	Description   string       `json:"description"`
	Organizer     string       `json:"organizer"`
	Location      LocationInfo `json:"location"`
}

type LocationInfo struct {
	Name      string   `json:"name"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func newGameListEntry(item store.GameListItem) GameListEntry {
	game := item.Game
	return GameListEntry{
		ID:            game.ID,
		Title:         game.Title,
		Venue:         game.Venue.Name,
		VenueImage:    game.Venue.ImageURL,
		DateTime:      game.DatetimeStart,
		Fee:           game.FeePerPlayer,
		Level:         game.SkillLevel,
		PlayersJoined: item.PlayersJoined,
		MaxPlayers:    game.MaxPlayers,
		Status:        string(game.Status),
		Description:   game.Description,
		Organizer:     game.Organizer.Name,
		Location: LocationInfo{
			Name:      game.Venue.Location,
			Latitude:  game.Venue.Latitude,
			Longitude: game.Venue.Longitude,
		},
	}
}

type GameListResponse struct {
	Games []GameListEntry `json:"games"`
	Total int             `json:"total"`
}

// endregion

// CreateGame godoc
// @Summary      Create a new game
// @Description  Schedules a new game at a venue. The game starts open for registration.
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        input body CreateGameInput true "Game Info"
// @Success      201  {object}  GameResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Venue or organizer not found"
// @Router       /games [post]
func (h *GameHandler) CreateGame(c *gin.Context) {
	var input CreateGameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game, err := h.games.CreateGame(c.Request.Context(), service.CreateGameInput{
		Title:         input.Title,
		VenueID:       input.VenueID,
		OrganizerID:   input.OrganizerID,
		DatetimeStart: input.DatetimeStart,
		DurationMins:  input.DurationMins,
		FeePerPlayer:  input.FeePerPlayer,
		MaxPlayers:    input.MaxPlayers,
		SkillLevel:    input.SkillLevel,
		GameType:      input.GameType,
		Description:   input.Description,
		Rules:         input.Rules,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"game": newGameResponse(*game)})
}

// GetGames godoc
// @Summary      List games
// @Description  Retrieves games matching the filters, ordered by start time ascending. Player counts are computed from current participation rows.
// @Tags         games
// @Produce      json
// @Param        status     query string false "Game status" default(open)
// @Param        skillLevel query string false "Skill level"
// @Param        venueId    query int    false "Venue ID"
// @Param        dateFrom   query string false "Earliest start time (RFC3339)"
// @Param        dateTo     query string false "Latest start time (RFC3339)"
// @Param        limit      query int    false "Items per page" default(20)
// @Param        offset     query int    false "Offset" default(0)
// @Success      200 {object} GameListResponse
// @Router       /games [get]
func (h *GameHandler) GetGames(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	filter := store.GameFilter{
		SkillLevel: c.Query("skillLevel"),
		Status:     models.GameStatus(c.DefaultQuery("status", string(models.StatusOpen))),
		Limit:      limit,
		Offset:     offset,
	}
	if venueID, err := strconv.ParseUint(c.Query("venueId"), 10, 32); err == nil {
		filter.VenueID = uint(venueID)
	}
	if from, err := time.Parse(time.RFC3339, c.Query("dateFrom")); err == nil {
		filter.DateFrom = &from
	}
	if to, err := time.Parse(time.RFC3339, c.Query("dateTo")); err == nil {
		filter.DateTo = &to
	}

	items, err := h.games.ListGames(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	entries := make([]GameListEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, newGameListEntry(item))
	}

	c.JSON(http.StatusOK, GameListResponse{Games: entries, Total: len(entries)})
}

// GetGameByID godoc
// @Summary      Get a game by ID
// @Description  Returns the full game view: venue, organizer and the roster partitioned into teams A, B and unassigned.
// @Tags         games
// @Produce      json
// @Param        id path int true "Game ID"
// @Success      200 {object} GameDetailResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id} [get]
func (h *GameHandler) GetGameByID(c *gin.Context) {
	gameID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	detail, err := h.games.GetGameDetail(c.Request.Context(), uint(gameID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"game": newGameDetailResponse(detail)})
}

// UpdateGame godoc
// @Summary      Update a game
// @Description  Partially updates game fields. Lifecycle status changes (in_progress, completed, cancelled) enter through here.
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        id    path int             true "Game ID"
// @Param        input body UpdateGameInput true "Fields to update"
// @Success      200 {object} GameResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id} [put]
func (h *GameHandler) UpdateGame(c *gin.Context) {
	gameID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	var input UpdateGameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game, err := h.games.UpdateGame(c.Request.Context(), uint(gameID), service.UpdateGameInput{
		Title:         input.Title,
		VenueID:       input.VenueID,
		DatetimeStart: input.DatetimeStart,
		DurationMins:  input.DurationMins,
		FeePerPlayer:  input.FeePerPlayer,
		MaxPlayers:    input.MaxPlayers,
		SkillLevel:    input.SkillLevel,
		GameType:      input.GameType,
		Description:   input.Description,
		Rules:         input.Rules,
		Status:        input.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"game": newGameResponse(*game)})
}

// DeleteGame godoc
// @Summary      Delete a game
// @Description  Deletes a game that has not started. Participation rows are removed with it.
// @Tags         games
// @Produce      json
// @Param        id path int true "Game ID"
// @Success      200 {object} map[string]string "{"message": "Game deleted successfully"}"
// @Failure      400 {object} ErrorResponse "Game has already started"
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id} [delete]
func (h *GameHandler) DeleteGame(c *gin.Context) {
	gameID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	if err := h.games.DeleteGame(c.Request.Context(), uint(gameID)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Game deleted successfully"})
}
