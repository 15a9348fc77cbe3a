package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"murmur/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepository_ListByPost_OldestFirst(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	post := createTestPost(t, db, alice.ID, "thread")
	other := createTestPost(t, db, alice.ID, "other thread")

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		comment := &models.Comment{
			PostID: post.ID,
			UserID: alice.ID,
			Body:   fmt.Sprintf("reply %d", i),
		}
		comment.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, db.Create(comment).Error)
	}
	require.NoError(t, db.Create(&models.Comment{PostID: other.ID, UserID: alice.ID, Body: "elsewhere"}).Error)

	comments, err := repo.ListByPost(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 3)

	// Conversation order: oldest first.
	for i, c := range comments {
		assert.Equal(t, fmt.Sprintf("reply %d", i), c.Body)
		assert.Equal(t, "alice", c.User.Username)
	}
}

func TestCommentRepository_CreateAndGetByID(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	post := createTestPost(t, db, alice.ID, "thread")

	comment := &models.Comment{PostID: post.ID, UserID: alice.ID, Body: "first"}
	require.NoError(t, repo.Create(ctx, comment))
	require.NotZero(t, comment.ID)

	got, err := repo.GetByID(ctx, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "first", got.Body)
	assert.Equal(t, "alice", got.User.Username)
}
