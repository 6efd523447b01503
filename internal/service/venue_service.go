package service

import (
	"context"

	"pitchside/backend/internal/models"
	"pitchside/backend/internal/store"
)

type VenueService struct {
	roster store.Roster
}

func NewVenueService(roster store.Roster) *VenueService {
	return &VenueService{roster: roster}
}

func (s *VenueService) GetVenue(ctx context.Context, venueID uint) (*models.Venue, error) {
	return s.roster.GetVenue(ctx, venueID)
}

func (s *VenueService) ListVenues(ctx context.Context) ([]models.Venue, error) {
	return s.roster.ListVenues(ctx)
}

func (s *VenueService) CreateVenue(ctx context.Context, venue *models.Venue) error {
	return s.roster.CreateVenue(ctx, venue)
}
