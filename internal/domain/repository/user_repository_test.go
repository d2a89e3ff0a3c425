package repository

import (
	"context"
	"testing"

	"github.com/chandraguptgosavi/codemore-backend/internal/common"
	"github.com/chandraguptgosavi/codemore-backend/internal/domain/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPgUserRepositoryLookups(t *testing.T) {
	db := openTestDB(t)
	repo := NewPgUserRepository(db)
	ctx := context.Background()

	u := createTestUser(t, repo, "ada")

	byEmail, err := repo.FindByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)
	assert.Equal(t, "hash", byEmail.HashedPassword)

	byName, err := repo.FindByUsername(ctx, "ada")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byName.ID)

	byID, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada", byID.Username)

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, common.ErrNotFound)

	exists, err := repo.ExistsByUsername(ctx, "ada")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = repo.ExistsByEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestPgUserRepositoryDuplicateIsConflict(t *testing.T) {
	db := openTestDB(t)
	repo := NewPgUserRepository(db)
	ctx := context.Background()

	createTestUser(t, repo, "ada")

	err := repo.Create(ctx, &model.User{
		ID:             uuid.NewString(),
		Username:       "ada",
		Email:          "other@example.com",
		HashedPassword: "hash",
	})
	assert.ErrorIs(t, err, common.ErrConflict)

	err = repo.Create(ctx, &model.User{
		ID:             uuid.NewString(),
		Username:       "other",
		Email:          "ada@example.com",
		HashedPassword: "hash",
	})
	assert.ErrorIs(t, err, common.ErrConflict)
}
