package handler

import (
	"net/http"
	"strconv"

	"pitchside/backend/internal/models"
	"pitchside/backend/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// UserResponse defines the structure for a user's public profile.
type UserResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Avatar      string  `json:"avatar"`
	Rating      float64 `json:"rating"`
	GamesPlayed int     `json:"gamesPlayed"`
}

func newUserResponse(user models.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Avatar:      user.AvatarURL,
		Rating:      user.Rating,
		GamesPlayed: user.GamesPlayed,
	}
}

// GetUserByID godoc
// @Summary      Get a user by ID
// @Description  Retrieves a player's public profile.
// @Tags         users
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200 {object} UserResponse
// @Failure      404 {object} ErrorResponse "User not found"
// @Router       /users/{id} [get]
func (h *UserHandler) GetUserByID(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	user, err := h.users.GetUser(c.Request.Context(), uint(userID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newUserResponse(*user))
}
