package repository

import (
	"context"
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepository_Integration(t *testing.T) {
	posts := NewPostRepository(testDB)
	ctx := context.Background()

	author := newTestUser(t, "post_author")
	viewer := newTestUser(t, "post_viewer")

	post := &models.Post{
		UserID:  author.ID,
		Caption: "sunset",
		Images:  []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"},
	}
	require.NoError(t, posts.Create(ctx, post))

	t.Run("GetByID computes counts and liked flag", func(t *testing.T) {
		got, err := posts.GetByID(ctx, post.ID, viewer.ID)
		require.NoError(t, err)
		assert.Equal(t, "sunset", got.Caption)
		assert.Len(t, got.Images, 2)
		assert.Zero(t, got.LikesCount)
		assert.False(t, got.Liked)
	})

	t.Run("Like is a set operation", func(t *testing.T) {
		inserted, err := posts.Like(ctx, viewer.ID, post.ID)
		require.NoError(t, err)
		assert.True(t, inserted)

		inserted, err = posts.Like(ctx, viewer.ID, post.ID)
		require.NoError(t, err)
		assert.False(t, inserted)

		got, err := posts.GetByID(ctx, post.ID, viewer.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, got.LikesCount)
		assert.True(t, got.Liked)
	})

	t.Run("Unlike removes the edge once", func(t *testing.T) {
		removed, err := posts.Unlike(ctx, viewer.ID, post.ID)
		require.NoError(t, err)
		assert.True(t, removed)

		removed, err = posts.Unlike(ctx, viewer.ID, post.ID)
		require.NoError(t, err)
		assert.False(t, removed)

		// Re-like after unlike works (hard-deleted edge leaves no index residue)
		inserted, err := posts.Like(ctx, viewer.ID, post.ID)
		require.NoError(t, err)
		assert.True(t, inserted)
	})

	t.Run("Update caption", func(t *testing.T) {
		post.Caption = "sunrise"
		require.NoError(t, posts.Update(ctx, post))

		got, err := posts.GetByID(ctx, post.ID, 0)
		require.NoError(t, err)
		assert.Equal(t, "sunrise", got.Caption)
	})

	t.Run("Feed excludes blocked authors", func(t *testing.T) {
		relations := NewRelationRepository(testDB)
		blockedAuthor := newTestUser(t, "post_blocked")
		blockedPost := &models.Post{UserID: blockedAuthor.ID, Caption: "hidden"}
		require.NoError(t, posts.Create(ctx, blockedPost))

		_, err := relations.CreateBlock(ctx, viewer.ID, blockedAuthor.ID)
		require.NoError(t, err)

		feed, err := posts.Feed(ctx, viewer.ID, 100, 0)
		require.NoError(t, err)

		ids := make(map[uint]bool, len(feed))
		for _, p := range feed {
			ids[p.ID] = true
		}
		assert.True(t, ids[post.ID])
		assert.False(t, ids[blockedPost.ID])
	})

	t.Run("Delete removes post and dependents", func(t *testing.T) {
		comments := NewCommentRepository(testDB)
		c := &models.Comment{UserID: viewer.ID, PostID: post.ID, Content: "bye"}
		require.NoError(t, comments.Create(ctx, c))

		require.NoError(t, posts.Delete(ctx, post.ID))

		_, err := posts.GetByID(ctx, post.ID, 0)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "NOT_FOUND", appErr.Code)

		list, err := comments.GetByPostID(ctx, post.ID, 10, 0, 0)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}
