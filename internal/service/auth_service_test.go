package service

import (
	"context"
	"testing"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repository"
	"fintrack/pkg/auth"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memUserStore struct {
	byID map[uuid.UUID]*models.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{byID: make(map[uuid.UUID]*models.User)}
}

func (s *memUserStore) Create(_ context.Context, user *models.User) error {
	cp := *user
	s.byID[user.ID] = &cp
	return nil
}

func (s *memUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range s.byID {
		if user.Email == email {
			cp := *user
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *memUserStore) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	user, ok := s.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *user
	return &cp, nil
}

func (s *memUserStore) Update(_ context.Context, user *models.User) error {
	if _, ok := s.byID[user.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *user
	s.byID[user.ID] = &cp
	return nil
}

func newTestAuthService(store *memUserStore) *AuthService {
	jwtManager := auth.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(store, jwtManager, zap.NewNop())
}

func registerRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Name:         "Alice",
		Email:        "alice@example.com",
		Password:     "s3cret-pass",
		MobileNumber: "+15550100",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	store := newMemUserStore()
	svc := newTestAuthService(store)

	resp, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, "alice@example.com", resp.User.Email)

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := newMemUserStore()
	svc := newTestAuthService(store)

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerRequest())
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestRegisterValidation(t *testing.T) {
	store := newMemUserStore()
	svc := newTestAuthService(store)

	req := registerRequest()
	req.Email = "not-an-email"
	_, err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, store.byID)
}

func TestLoginWrongPassword(t *testing.T) {
	store := newMemUserStore()
	svc := newTestAuthService(store)

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newTestAuthService(newMemUserStore())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshToken(t *testing.T) {
	store := newMemUserStore()
	svc := newTestAuthService(store)

	resp, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), resp.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, refreshed.User.ID)

	_, err = svc.RefreshToken(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
