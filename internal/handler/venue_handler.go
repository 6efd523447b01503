package handler

import (
	"net/http"
	"strconv"

	"pitchside/backend/internal/models"
	"pitchside/backend/internal/service"

	"github.com/gin-gonic/gin"
)

type VenueHandler struct {
	venues *service.VenueService
}

func NewVenueHandler(venues *service.VenueService) *VenueHandler {
	return &VenueHandler{venues: venues}
}

type VenueInput struct {
	Name        string   `json:"name" binding:"required"`
	Location    string   `json:"location"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	ImageURL    string   `json:"imageUrl"`
	Description string   `json:"description"`
}

type VenueResponse struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
}

func newVenueResponse(venue models.Venue) VenueResponse {
	return VenueResponse{
		ID:          venue.ID,
		Name:        venue.Name,
		Location:    venue.Location,
		Latitude:    venue.Latitude,
		Longitude:   venue.Longitude,
		Image:       venue.ImageURL,
		Description: venue.Description,
	}
}

// CreateVenue godoc
// @Summary      Create a new venue
// @Description  Registers a venue games can be scheduled at.
// @Tags         venues
// @Accept       json
// @Produce      json
// @Param        input body VenueInput true "Venue Info"
// @Success      201  {object}  VenueResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /venues [post]
func (h *VenueHandler) CreateVenue(c *gin.Context) {
	var input VenueInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	venue := models.Venue{
		Name:        input.Name,
		Location:    input.Location,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		ImageURL:    input.ImageURL,
		Description: input.Description,
	}
	if err := h.venues.CreateVenue(c.Request.Context(), &venue); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newVenueResponse(venue))
}

// GetVenues godoc
// @Summary      List venues
// @Description  Retrieves all venues ordered by name.
// @Tags         venues
// @Produce      json
// @Success      200  {array}  VenueResponse
// @Router       /venues [get]
func (h *VenueHandler) GetVenues(c *gin.Context) {
	venues, err := h.venues.ListVenues(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]VenueResponse, 0, len(venues))
	for _, venue := range venues {
		response = append(response, newVenueResponse(venue))
	}
	c.JSON(http.StatusOK, response)
}

// GetVenueByID godoc
// @Summary      Get a venue by ID
// @Tags         venues
// @Produce      json
// @Param        id path int true "Venue ID"
// @Success      200 {object} VenueResponse
// @Failure      404 {object} ErrorResponse "Venue not found"
// @Router       /venues/{id} [get]
func (h *VenueHandler) GetVenueByID(c *gin.Context) {
	venueID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid venue ID"})
		return
	}

	venue, err := h.venues.GetVenue(c.Request.Context(), uint(venueID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newVenueResponse(*venue))
}
