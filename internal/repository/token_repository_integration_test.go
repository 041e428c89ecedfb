//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/palletdesk/pallet-service/internal/domain/model"
)

func TestTokenRepository_Lifecycle(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	defer cleanupTestDB(t, db)

	repo := NewTokenRepository(db.Database)
	ctx := context.Background()
	userID := primitive.NewObjectID()

	refresh := &model.Token{
		UserID:    userID,
		Token:     "refresh-token-1",
		Type:      "refresh",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, repo.Create(ctx, refresh))

	found, err := repo.FindByToken(ctx, "refresh-token-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, userID, found.UserID)

	require.NoError(t, repo.DeleteByToken(ctx, "refresh-token-1"))

	found, err = repo.FindByToken(ctx, "refresh-token-1")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestTokenRepository_Blacklist(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	defer cleanupTestDB(t, db)

	repo := NewTokenRepository(db.Database)
	ctx := context.Background()

	blacklisted := &model.Token{
		UserID:    primitive.NewObjectID(),
		Token:     "revoked-access-token",
		Type:      "blacklist",
		ExpiresAt: time.Now().Add(15 * time.Minute),
	}
	require.NoError(t, repo.Create(ctx, blacklisted))

	isBlacklisted, err := repo.IsBlacklisted(ctx, "revoked-access-token")
	require.NoError(t, err)
	assert.True(t, isBlacklisted)

	isBlacklisted, err = repo.IsBlacklisted(ctx, "some-other-token")
	require.NoError(t, err)
	assert.False(t, isBlacklisted)
}

func TestTokenRepository_DeleteByUserID(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	defer cleanupTestDB(t, db)

	repo := NewTokenRepository(db.Database)
	ctx := context.Background()

	userID := primitive.NewObjectID()
	otherUserID := primitive.NewObjectID()

	require.NoError(t, repo.Create(ctx, &model.Token{
		UserID: userID, Token: "user-refresh-1", Type: "refresh", ExpiresAt: time.Now().Add(time.Hour),
	}))
	require.NoError(t, repo.Create(ctx, &model.Token{
		UserID: userID, Token: "user-refresh-2", Type: "refresh", ExpiresAt: time.Now().Add(time.Hour),
	}))
	require.NoError(t, repo.Create(ctx, &model.Token{
		UserID: otherUserID, Token: "other-refresh", Type: "refresh", ExpiresAt: time.Now().Add(time.Hour),
	}))

	require.NoError(t, repo.DeleteByUserID(ctx, userID, "refresh"))

	found, err := repo.FindByToken(ctx, "user-refresh-1")
	require.NoError(t, err)
	assert.Nil(t, found)

	kept, err := repo.FindByToken(ctx, "other-refresh")
	require.NoError(t, err)
	assert.NotNil(t, kept)
}
