package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pitchside/backend/internal/models"
	"pitchside/backend/internal/service"
	"pitchside/backend/internal/store/storetest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(f *storetest.FakeRoster) *gin.Engine {
	gin.SetMode(gin.TestMode)

	gameHandler := NewGameHandler(service.NewGameService(f))
	venueHandler := NewVenueHandler(service.NewVenueService(f))
	userHandler := NewUserHandler(service.NewUserService(f))

	router := gin.New()
	apiV1 := router.Group("/api/v1")
	{
		games := apiV1.Group("/games")
		games.GET("", gameHandler.GetGames)
		games.POST("", gameHandler.CreateGame)
		games.GET("/:id", gameHandler.GetGameByID)
		games.PUT("/:id", gameHandler.UpdateGame)
		games.DELETE("/:id", gameHandler.DeleteGame)
		games.POST("/:id/join", gameHandler.JoinGame)
		games.DELETE("/:id/join", gameHandler.LeaveGame)

		venues := apiV1.Group("/venues")
		venues.GET("", venueHandler.GetVenues)
		venues.POST("", venueHandler.CreateVenue)
		venues.GET("/:id", venueHandler.GetVenueByID)

		users := apiV1.Group("/users")
		users.GET("/:id", userHandler.GetUserByID)
	}
	return router
}

func seedFixtures(f *storetest.FakeRoster) {
	f.AddVenue(models.Venue{ID: 1, Name: "Riverside Pitch", Location: "12 River Rd", ImageURL: "https://img.example/pitch.jpg"})
	f.AddUser(models.User{ID: 1, Name: "Alex", Rating: 4.2, GamesPlayed: 31})
	f.AddUser(models.User{ID: 10, Name: "Sam"})
	f.AddUser(models.User{ID: 11, Name: "Kim"})
	f.AddGame(models.Game{
		ID:            1,
		Title:         "Sunday 5-a-side",
		VenueID:       1,
		OrganizerID:   1,
		DatetimeStart: time.Now().Add(48 * time.Hour),
		DurationMins:  90,
		FeePerPlayer:  5,
		MaxPlayers:    2,
		SkillLevel:    "intermediate",
		GameType:      "casual",
		Status:        models.StatusOpen,
	})
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	r := httptest.NewRequest(method, path, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func TestJoinGame_Created(t *testing.T) {
	f := storetest.NewFakeRoster()
	seedFixtures(f)
	router := newTestRouter(f)

	w := doJSON(t, router, http.MethodPost, "/api/v1/games/1/join", gin.H{"userId": 10, "team": "A"})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Participant ParticipantResponse `json:"participant"`
		Message     string              `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, uint(10), resp.Participant.UserID)
	require.NotNil(t, resp.Participant.Team)
	assert.Equal(t, "A", *resp.Participant.Team)
	assert.Equal(t, "pending", resp.Participant.PaymentStatus)
	assert.Equal(t, "Successfully joined the game", resp.Message)
}

func TestJoinGame_MissingUserID(t *testing.T) {
	f := storetest.NewFakeRoster()
	seedFixtures(f)
	router := newTestRouter(f)

	w := doJSON(t, router, http.MethodPost, "/api/v1/games/1/join", gin.H{"team": "A"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestJoinGame_InvalidTeam(t *testing.T) {
	f := storetest.NewFakeRoster()
	seedFixtures(f)
	router := newTestRouter(f)

	w := doJSON(t, router, http.MethodPost, "/api/v1/games/1/join", gin.H{"userId": 10, "team": "C"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestJoinGame_GameNotFound(t *testing.T) {
	f := storetest.NewFakeRoster()
	seedFixtures(f)
	router := newTestRouter(f)

	w := doJSON(t, router, http.MethodPost, "/api/v1/games/99/join", gin.H{"userId": 10})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestJoinGame_FullAndAlreadyJoined(t *testing.T) {
	f := storetest.NewFakeRoster()
	seedFixtures(f)
	router := newTestRouter(f)

	require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/api/v1/games/1/join", gin.H{"userId": 10}).Code)

	// duplicate join
	w := doJSON(t, router, http.MethodPost, "/api/v1/games/1/join", gin.H{"userId": 10})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already registered")

	require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/api/v1/games/1/join", gin.H{"userId": 11}).Code)
	assert.Equal(t, models.StatusFull, f.GameStatus(1))

	// no slots left
	w = doJSON(t, router, http.MethodPost, "/api/v1/games/1/join", gin.H{"userId": 12})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "full")
}

func TestLeaveGame_OK(t *testing.T) {
	f := storetest.NewFakeRoster()
	seedFixtures(f)
	f.AddParticipant(models.GameParticipant{GameID: 1, UserID: 10})
	router := newTestRouter(f)

	w := doJSON(t, router, http.MethodDelete, "/api/v1/games/1/join?userId=10", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Successfully left the game")
	assert.Equal(t, 0, f.ParticipantCount(1))
}

func TestLeaveGame_MissingUserID(t *testing.T) {
	f := storetest.NewFakeRoster()
	seedFixtures(f)
	router := newTestRouter(f)

	w := doJSON(t, router, http.MethodDelete, "/api/v1/games/1/join", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "userId")
}

func TestLeaveGame_NotRegistered(t *testing.T) {
	f := storetest.NewFakeRoster()
	seedFixtures(f)
	router := newTestRouter(f)

	w := doJSON(t, router, http.MethodDelete, "/api/v1/games/1/join?userId=10", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLeaveGame_TooLate(t *testing.T) {
	f := storetest.NewFakeRoster()
	seedFixtures(f)
	f.AddGame(models.Game{
		ID:            2,
		VenueID:       1,
		OrganizerID:   1,
		DatetimeStart: time.Now().Add(30 * time.Minute),
		MaxPlayers:    10,
		Status:        models.StatusOpen,
	})
	f.AddParticipant(models.GameParticipant{GameID: 2, UserID: 10})
	router := newTestRouter(f)

	w := doJSON(t, router, http.MethodDelete, "/api/v1/games/2/join?userId=10", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "within 2 hours")
	assert.Equal(t, 1, f.ParticipantCount(2))
}

func TestGetGameByID_Projection(t *testing.T) {
	f := storetest.NewFakeRoster()
	seedFixtures(f)
	teamA := models.TeamA
	base := time.Now()
	f.AddParticipant(models.GameParticipant{GameID: 1, UserID: 10, Team: &teamA, JoinedAt: base})
	f.AddParticipant(models.GameParticipant{GameID: 1, UserID: 11, JoinedAt: base.Add(time.Minute)})
	router := newTestRouter(f)

	w := doJSON(t, router, http.MethodGet, "/api/v1/games/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Game GameDetailResponse `json:"game"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, uint(1), resp.Game.ID)
	assert.Equal(t, "Riverside Pitch", resp.Game.Venue.Name)
	assert.Equal(t, "Alex", resp.Game.Organizer.Name)
	assert.Equal(t, 2, resp.Game.PlayersJoined)
	require.Len(t, resp.Game.Teams.A, 1)
	assert.Equal(t, "Sam", resp.Game.Teams.A[0].Name)
	assert.Empty(t, resp.Game.Teams.B)
	require.Len(t, resp.Game.Teams.Unassigned, 1)
	assert.Equal(t, "Kim", resp.Game.Teams.Unassigned[0].Name)
	// players joined equals the partition sizes summed
	assert.Equal(t, resp.Game.PlayersJoined,
		len(resp.Game.Teams.A)+len(resp.Game.Teams.B)+len(resp.Game.Teams.Unassigned))
}

func TestGetGameByID_NotFound(t *testing.T) {
	f := storetest.NewFakeRoster()
	seedFixtures(f)
	router := newTestRouter(f)

	w := doJSON(t, router, http.MethodGet, "/api/v1/games/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetGames_List(t *testing.T) {
	f := storetest.NewFakeRoster()
	seedFixtures(f)
	f.AddParticipant(models.GameParticipant{GameID: 1, UserID: 10})
	router := newTestRouter(f)

	w := doJSON(t, router, http.MethodGet, "/api/v1/games", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp GameListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	entry := resp.Games[0]
	assert.Equal(t, "Riverside Pitch", entry.Venue)
	assert.Equal(t, "Alex", entry.Organizer)
	assert.Equal(t, 1, entry.PlayersJoined)
	assert.Equal(t, 2, entry.MaxPlayers)
	assert.Equal(t, "open", entry.Status)
	assert.Equal(t, "12 River Rd", entry.Location.Name)
}

func TestGetGames_StatusFilterDefaultsToOpen(t *testing.T) {
	f := storetest.NewFakeRoster()
	seedFixtures(f)
	f.AddGame(models.Game{
		ID: 2, VenueID: 1, OrganizerID: 1, MaxPlayers: 10,
		DatetimeStart: time.Now().Add(24 * time.Hour),
		Status:        models.StatusCancelled,
	})
	router := newTestRouter(f)

	w := doJSON(t, router, http.MethodGet, "/api/v1/games", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp GameListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, uint(1), resp.Games[0].ID)
}

func TestCreateGame_Created(t *testing.T) {
	f := storetest.NewFakeRoster()
	seedFixtures(f)
	router := newTestRouter(f)

	w := doJSON(t, router, http.MethodPost, "/api/v1/games", gin.H{
		"title":         "Tuesday night game",
		"venueId":       1,
		"organizerId":   1,
		"datetimeStart": time.Now().Add(72 * time.Hour).Format(time.RFC3339),
		"maxPlayers":    10,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Game GameResponse `json:"game"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "open", resp.Game.Status)
	assert.Equal(t, 90, resp.Game.Duration)
	assert.Equal(t, "casual", resp.Game.GameType)
}

func TestCreateGame_MissingFields(t *testing.T) {
	f := storetest.NewFakeRoster()
	seedFixtures(f)
	router := newTestRouter(f)

	w := doJSON(t, router, http.MethodPost, "/api/v1/games", gin.H{"title": "no venue"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateGame_LifecycleTransition(t *testing.T) {
	f := storetest.NewFakeRoster()
	seedFixtures(f)
	router := newTestRouter(f)

	w := doJSON(t, router, http.MethodPut, "/api/v1/games/1", gin.H{"status": "in_progress"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.StatusInProgress, f.GameStatus(1))

	// roster operations are rejected from there on
	w = doJSON(t, router, http.MethodPost, "/api/v1/games/1/join", gin.H{"userId": 10})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "not open")
}

func TestDeleteGame_StartedRejected(t *testing.T) {
	f := storetest.NewFakeRoster()
	seedFixtures(f)
	f.AddGame(models.Game{
		ID: 3, VenueID: 1, OrganizerID: 1, MaxPlayers: 10,
		DatetimeStart: time.Now(),
		Status:        models.StatusInProgress,
	})
	router := newTestRouter(f)

	w := doJSON(t, router, http.MethodDelete, "/api/v1/games/3", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/api/v1/games/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStoreFailureMapsTo500(t *testing.T) {
	f := storetest.NewFakeRoster()
	seedFixtures(f)
	f.FailWith = errors.New("connection refused")
	router := newTestRouter(f)

	w := doJSON(t, router, http.MethodGet, "/api/v1/games/1", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
}

func TestGetUserByID(t *testing.T) {
	f := storetest.NewFakeRoster()
	seedFixtures(f)
	router := newTestRouter(f)

	w := doJSON(t, router, http.MethodGet, "/api/v1/users/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Alex", resp.Name)
	assert.Equal(t, 4.2, resp.Rating)

	w = doJSON(t, router, http.MethodGet, "/api/v1/users/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVenues_CRUD(t *testing.T) {
	f := storetest.NewFakeRoster()
	router := newTestRouter(f)

	w := doJSON(t, router, http.MethodPost, "/api/v1/venues", gin.H{
		"name":     "Harbour Arena",
		"location": "3 Dock St",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/venues", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var venues []VenueResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &venues))
	require.Len(t, venues, 1)
	assert.Equal(t, "Harbour Arena", venues[0].Name)

	w = doJSON(t, router, http.MethodGet, "/api/v1/venues/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
