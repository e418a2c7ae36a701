package service

import (
	"context"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserStore is the persistence contract the user service needs. Satisfied by
// repository.UserRepository.
type UserStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}

type UserService struct {
	users  UserStore
	logger *zap.Logger
}

func NewUserService(users UserStore, logger *zap.Logger) *UserService {
	return &UserService{
		users:  users,
		logger: logger,
	}
}

// Get returns a profile; users can only read their own.
func (s *UserService) Get(ctx context.Context, actorID, id uuid.UUID) (*dto.UserResponse, error) {
	if err := authorizeOwner(actorID, id); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return userResponse(user), nil
}

// Update edits the profile's name and email; empty fields keep their current
// value.
func (s *UserService) Update(ctx context.Context, actorID, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if err := authorizeOwner(actorID, id); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	return userResponse(user), nil
}

func userResponse(u *models.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:           u.ID.String(),
		Name:         u.Name,
		Email:        u.Email,
		MobileNumber: u.MobileNumber,
		CreatedAt:    u.CreatedAt.Format(time.RFC3339),
	}
}
