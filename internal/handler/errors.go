package handler

import (
	"errors"
	"net/http"

	"pitchside/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// respondError maps domain errors onto HTTP responses. Precondition
// failures keep their reason string so clients can render it; anything
// unclassified is a store failure and surfaces as a 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrGameNotFound),
		errors.Is(err, models.ErrVenueNotFound),
		errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrNotRegistered):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrGameNotOpen),
		errors.Is(err, models.ErrGameFull),
		errors.Is(err, models.ErrAlreadyJoined),
		errors.Is(err, models.ErrGameStarted),
		errors.Is(err, models.ErrTooLateToLeave):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logrus.WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
