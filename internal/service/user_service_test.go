package service

import (
	"context"
	"testing"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedUser(t *testing.T, store *memUserStore) *models.User {
	t.Helper()
	user := &models.User{
		ID:        uuid.New(),
		Name:      "Bob",
		Email:     "bob@example.com",
		Password:  "hashed",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, store.Create(context.Background(), user))
	return user
}

func TestUserGetSelf(t *testing.T) {
	store := newMemUserStore()
	svc := NewUserService(store, zap.NewNop())
	user := seedUser(t, store)

	resp, err := svc.Get(context.Background(), user.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), resp.ID)
	assert.Equal(t, "bob@example.com", resp.Email)
}

func TestUserGetOtherDenied(t *testing.T) {
	store := newMemUserStore()
	svc := NewUserService(store, zap.NewNop())
	user := seedUser(t, store)

	_, err := svc.Get(context.Background(), uuid.New(), user.ID)
	assert.ErrorIs(t, err, ErrDenied)
}

func TestUserUpdate(t *testing.T) {
	store := newMemUserStore()
	svc := NewUserService(store, zap.NewNop())
	user := seedUser(t, store)

	resp, err := svc.Update(context.Background(), user.ID, user.ID, &dto.UpdateUserRequest{
		Name: "Robert",
	})
	require.NoError(t, err)
	assert.Equal(t, "Robert", resp.Name)
	assert.Equal(t, "bob@example.com", resp.Email)

	stored, err := store.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Robert", stored.Name)
}

func TestUserUpdateInvalidEmail(t *testing.T) {
	store := newMemUserStore()
	svc := NewUserService(store, zap.NewNop())
	user := seedUser(t, store)

	_, err := svc.Update(context.Background(), user.ID, user.ID, &dto.UpdateUserRequest{
		Email: "nope",
	})
	assert.ErrorIs(t, err, ErrValidation)

	stored, err := store.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", stored.Email)
}

func TestUserUpdateOtherDenied(t *testing.T) {
	store := newMemUserStore()
	svc := NewUserService(store, zap.NewNop())
	user := seedUser(t, store)

	_, err := svc.Update(context.Background(), uuid.New(), user.ID, &dto.UpdateUserRequest{
		Name: "Mallory",
	})
	assert.ErrorIs(t, err, ErrDenied)
}

func TestUserGetMissing(t *testing.T) {
	store := newMemUserStore()
	svc := NewUserService(store, zap.NewNop())

	id := uuid.New()
	_, err := svc.Get(context.Background(), id, id)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
