package service

import (
	"context"
	"strings"
	"testing"

	"murmur/internal/models"
	"murmur/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentService_CreateComment(t *testing.T) {
	db := setupServiceTestDB(t)
	postSvc := newTestPostService(db)
	svc := NewCommentService(repository.NewCommentRepository(db), repository.NewPostRepository(db))
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	post, err := postSvc.CreatePost(ctx, CreatePostInput{UserID: alice.ID, Title: "t", Body: "b"})
	require.NoError(t, err)

	comment, err := svc.CreateComment(ctx, CreateCommentInput{
		UserID: bob.ID,
		PostID: post.ID,
		Body:   "nice post",
	})
	require.NoError(t, err)
	assert.Equal(t, "nice post", comment.Body)
	assert.Equal(t, "bob", comment.User.Username)

	var appErr *models.AppError

	_, err = svc.CreateComment(ctx, CreateCommentInput{UserID: bob.ID, PostID: post.ID, Body: ""})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)

	_, err = svc.CreateComment(ctx, CreateCommentInput{UserID: bob.ID, PostID: post.ID, Body: strings.Repeat("x", 10001)})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)

	// Commenting on a missing post is a not-found.
	_, err = svc.CreateComment(ctx, CreateCommentInput{UserID: bob.ID, PostID: 999, Body: "hello?"})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestCommentService_ListComments(t *testing.T) {
	db := setupServiceTestDB(t)
	postSvc := newTestPostService(db)
	svc := NewCommentService(repository.NewCommentRepository(db), repository.NewPostRepository(db))
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	post, err := postSvc.CreatePost(ctx, CreatePostInput{UserID: alice.ID, Title: "t", Body: "b"})
	require.NoError(t, err)

	for _, body := range []string{"one", "two"} {
		_, err := svc.CreateComment(ctx, CreateCommentInput{UserID: alice.ID, PostID: post.ID, Body: body})
		require.NoError(t, err)
	}

	comments, err := svc.ListComments(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "one", comments[0].Body)

	_, err = svc.ListComments(ctx, 999)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}
