package store

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-fin-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryUsers(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()

	ann, err := repo.CreateUser(ctx, models.User{Email: "ann@example.com", Name: "Ann", PasswordHash: "h1"})
	require.NoError(t, err)
	assert.NotZero(t, ann.UserID)
	assert.False(t, ann.CreatedAt.IsZero())

	_, err = repo.CreateUser(ctx, models.User{Email: "ann@example.com", Name: "Other"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	_, err = repo.FindUserByEmail(ctx, "ANN@example.com")
	assert.ErrorIs(t, err, ErrNoUserWasFound, "emails are compared exactly")

	found, err := repo.FindUserByEmail(ctx, "ann@example.com")
	require.NoError(t, err)
	assert.Equal(t, ann.UserID, found.UserID)

	renamed, err := repo.UpdateName(ctx, ann.UserID, "Annie")
	require.NoError(t, err)
	assert.Equal(t, "Annie", renamed.Name)

	require.NoError(t, repo.UpdatePasswordHash(ctx, ann.UserID, "h2"))
	byID, err := repo.FindUserByID(ctx, ann.UserID)
	require.NoError(t, err)
	assert.Equal(t, "h2", byID.PasswordHash)
	assert.Equal(t, "Annie", byID.Name)

	_, err = repo.FindUserByID(ctx, 999)
	assert.ErrorIs(t, err, ErrNoUserWasFound)
	_, err = repo.UpdateName(ctx, 999, "x")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
	assert.ErrorIs(t, repo.UpdatePasswordHash(ctx, 999, "x"), ErrNoUserWasFound)
}
