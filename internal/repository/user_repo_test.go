package repository

import (
	"context"
	"testing"

	"filesmanager/internal/domain"
	"filesmanager/internal/pkg/hash"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndLookup(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        "Bob@dylan.com",
		PasswordHash: hash.SHA1Hex("toto1234!"),
	}
	require.NoError(t, repo.Create(ctx, user))
	assert.Equal(t, "bob@dylan.com", user.Email)

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob@dylan.com", got.Email)

	exists, err := repo.ExistsByEmail(ctx, "BOB@dylan.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "nobody@dylan.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUserRepository_GetByCredentials(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        "bob@dylan.com",
		PasswordHash: hash.SHA1Hex("toto1234!"),
	}
	require.NoError(t, repo.Create(ctx, user))

	got, err := repo.GetByCredentials(ctx, "bob@dylan.com", hash.SHA1Hex("toto1234!"))
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = repo.GetByCredentials(ctx, "bob@dylan.com", hash.SHA1Hex("wrong"))
	assert.ErrorIs(t, err, ErrNotFound)
}
