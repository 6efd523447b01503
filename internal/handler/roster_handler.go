package handler

import (
	"net/http"
	"strconv"
	"time"

	"pitchside/backend/internal/models"
	"pitchside/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

type JoinGameInput struct {
	UserID   uint    `json:"userId" binding:"required"`
	Team     *string `json:"team" binding:"omitempty,oneof=A B"`
	Position *string `json:"position"`
}

type ParticipantResponse struct {
	ID            uint      `json:"id"`
	GameID        uint      `json:"gameId"`
	UserID        uint      `json:"userId"`
	Team          *string   `json:"team"`
	Position      *string   `json:"position"`
	PaymentStatus string    `json:"paymentStatus"`
	JoinedAt      time.Time `json:"joinedAt"`
}

func newParticipantResponse(p models.GameParticipant) ParticipantResponse {
	var team *string
	if p.Team != nil {
		value := string(*p.Team)
		team = &value
	}
	return ParticipantResponse{
		ID:            p.ID,
		GameID:        p.GameID,
		UserID:        p.UserID,
		Team:          team,
		Position:      p.Position,
		PaymentStatus: string(p.PaymentStatus),
		JoinedAt:      p.JoinedAt,
	}
}

// endregion

// JoinGame godoc
// @Summary      Join a game
// @Description  Registers the user for the game if it is open and a slot remains. Filling the last slot flips the game to full.
// @Tags         roster
// @Accept       json
// @Produce      json
// @Param        id    path int           true "Game ID"
// @Param        input body JoinGameInput true "Join Info"
// @Success      201 {object} map[string]interface{} "{"participant": {...}, "message": "Successfully joined the game"}"
// @Failure      400 {object} ErrorResponse "Game not open, full, or user already registered"
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id}/join [post]
func (h *GameHandler) JoinGame(c *gin.Context) {
	gameID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	var input JoinGameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var team *models.Team
	if input.Team != nil {
		value := models.Team(*input.Team)
		team = &value
	}

	participant, err := h.games.Join(c.Request.Context(), service.JoinRequest{
		GameID:   uint(gameID),
		UserID:   input.UserID,
		Team:     team,
		Position: input.Position,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"participant": newParticipantResponse(*participant),
		"message":     "Successfully joined the game",
	})
}

// LeaveGame godoc
// @Summary      Leave a game
// @Description  Withdraws the user from the game. Rejected once the game has started or within 2 hours of kickoff. A full game reopens.
// @Tags         roster
// @Produce      json
// @Param        id     path  int true "Game ID"
// @Param        userId query int true "User ID"
// @Success      200 {object} map[string]string "{"message": "Successfully left the game"}"
// @Failure      400 {object} ErrorResponse "Game started or too close to kickoff"
// @Failure      404 {object} ErrorResponse "User is not registered for this game"
// @Router       /games/{id}/join [delete]
func (h *GameHandler) LeaveGame(c *gin.Context) {
	gameID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	userID, err := strconv.ParseUint(c.Query("userId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required parameter: userId"})
		return
	}

	if err := h.games.Leave(c.Request.Context(), uint(gameID), uint(userID)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Successfully left the game"})
}
