package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"murmur/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	// A second pool connection would see its own empty in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Post{}, &models.Comment{}, &models.Like{}))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Password: "x"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestPost(t *testing.T, db *gorm.DB, userID uint, title string) *models.Post {
	t.Helper()
	post := &models.Post{Title: title, Body: "body", UserID: userID}
	require.NoError(t, db.Create(post).Error)
	return post
}

func TestPostRepository_LikeToggleSemantics(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	post := createTestPost(t, db, alice.ID, "hello")

	liked, err := repo.IsLiked(ctx, alice.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	require.NoError(t, repo.Like(ctx, alice.ID, post.ID))

	liked, err = repo.IsLiked(ctx, alice.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	count, err := repo.CountLikes(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// Liking again must not create a second row.
	require.NoError(t, repo.Like(ctx, alice.ID, post.ID))
	count, err = repo.CountLikes(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, repo.Unlike(ctx, alice.ID, post.ID))
	liked, err = repo.IsLiked(ctx, alice.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	count, err = repo.CountLikes(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestPostRepository_GetByID_LikeCount(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	post := createTestPost(t, db, alice.ID, "popular")

	require.NoError(t, repo.Like(ctx, alice.ID, post.ID))
	require.NoError(t, repo.Like(ctx, bob.ID, post.ID))

	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.LikeCount)
	assert.Equal(t, "alice", got.User.Username)
}

func TestPostRepository_GetByID_NotFound(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewPostRepository(db)

	_, err := repo.GetByID(context.Background(), 999)
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestPostRepository_List_PaginationAndOrder(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	base := time.Now().Add(-24 * time.Hour)
	for i := 0; i < PageSize+5; i++ {
		post := &models.Post{
			Title:  fmt.Sprintf("post %d", i),
			Body:   "body",
			UserID: alice.ID,
		}
		post.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, db.Create(post).Error)
	}

	page1, err := repo.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, page1, PageSize)
	// Newest first.
	assert.Equal(t, fmt.Sprintf("post %d", PageSize+4), page1[0].Title)
	for i := 1; i < len(page1); i++ {
		assert.False(t, page1[i].CreatedAt.After(page1[i-1].CreatedAt))
	}

	page2, err := repo.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, page2, 5)
	assert.Equal(t, "post 4", page2[0].Title)

	// Pages beyond the data are empty, not an error.
	page3, err := repo.List(ctx, 3)
	require.NoError(t, err)
	assert.Empty(t, page3)

	// Page zero or negative falls back to the first page.
	pageZero, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, pageZero, PageSize)
	assert.Equal(t, page1[0].ID, pageZero[0].ID)
}

func TestPostRepository_UniqueLikePerUserPost(t *testing.T) {
	db := setupSQLiteDB(t)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	post := createTestPost(t, db, alice.ID, "once")

	like := models.Like{UserID: alice.ID, PostID: &post.ID}
	require.NoError(t, db.WithContext(ctx).Create(&like).Error)

	dup := models.Like{UserID: alice.ID, PostID: &post.ID}
	err := db.WithContext(ctx).Create(&dup).Error
	require.Error(t, err)
	assert.True(t, IsUniqueConstraintError(err))
}
