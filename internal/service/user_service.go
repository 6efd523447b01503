package service

import (
	"context"

	"pitchside/backend/internal/models"
	"pitchside/backend/internal/store"
)

type UserService struct {
	roster store.Roster
}

func NewUserService(roster store.Roster) *UserService {
	return &UserService{roster: roster}
}

func (s *UserService) GetUser(ctx context.Context, userID uint) (*models.User, error) {
	return s.roster.GetUser(ctx, userID)
}
