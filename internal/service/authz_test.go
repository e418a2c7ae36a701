package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAuthorizeOwner(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()

	assert.NoError(t, authorizeOwner(owner, owner))
	assert.ErrorIs(t, authorizeOwner(other, owner), ErrDenied)
	assert.ErrorIs(t, authorizeOwner(uuid.Nil, owner), ErrDenied)
}
