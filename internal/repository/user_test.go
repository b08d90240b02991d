package repository

import (
	"context"
	"errors"
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CRUD(t *testing.T) {
	repo := NewUserRepository(testDB)
	ctx := context.Background()

	u := newTestUser(t, "crud")

	t.Run("GetByID", func(t *testing.T) {
		got, err := repo.GetByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, u.Username, got.Username)
	})

	t.Run("GetByID missing user", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 999999999)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
	})

	t.Run("Create duplicate username", func(t *testing.T) {
		dup := &models.User{Username: u.Username, Email: "other_" + u.Email, Password: "x"}
		err := repo.Create(ctx, dup)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "ALREADY_EXISTS", appErr.Code)
	})

	t.Run("Update and Search", func(t *testing.T) {
		u.FullName = "Marisol Quintero"
		u.Bio = "hello"
		require.NoError(t, repo.Update(ctx, u))

		found, err := repo.Search(ctx, "marisol", 10, 0)
		require.NoError(t, err)
		require.NotEmpty(t, found)
		assert.Equal(t, u.ID, found[0].ID)
	})
}

// Full account deletion: everything referencing the user goes, parents that
// merely lose leaf rows survive.
func TestUserRepository_DeleteCascade(t *testing.T) {
	users := NewUserRepository(testDB)
	posts := NewPostRepository(testDB)
	comments := NewCommentRepository(testDB)
	relations := NewRelationRepository(testDB)
	stories := NewStoryRepository(testDB)
	conversations := NewConversationRepository(testDB)
	ctx := context.Background()

	victim := newTestUser(t, "cas_victim")
	survivor := newTestUser(t, "cas_survivor")

	// Victim's own post, commented on and liked by the survivor.
	victimPost := &models.Post{UserID: victim.ID, Caption: "mine"}
	require.NoError(t, posts.Create(ctx, victimPost))
	survivorCommentOnVictim := &models.Comment{UserID: survivor.ID, PostID: victimPost.ID, Content: "nice"}
	require.NoError(t, comments.Create(ctx, survivorCommentOnVictim))
	_, err := posts.Like(ctx, survivor.ID, victimPost.ID)
	require.NoError(t, err)

	// Survivor's post, touched by the victim: comment, reply, likes.
	survivorPost := &models.Post{UserID: survivor.ID, Caption: "keep me"}
	require.NoError(t, posts.Create(ctx, survivorPost))
	victimComment := &models.Comment{UserID: victim.ID, PostID: survivorPost.ID, Content: "from victim"}
	require.NoError(t, comments.Create(ctx, victimComment))
	survivorComment := &models.Comment{UserID: survivor.ID, PostID: survivorPost.ID, Content: "from survivor"}
	require.NoError(t, comments.Create(ctx, survivorComment))
	victimReply := &models.Reply{UserID: victim.ID, CommentID: survivorComment.ID, Content: "reply from victim"}
	require.NoError(t, comments.CreateReply(ctx, victimReply))
	_, err = posts.Like(ctx, victim.ID, survivorPost.ID)
	require.NoError(t, err)
	_, err = comments.Like(ctx, victim.ID, survivorComment.ID)
	require.NoError(t, err)

	// Relations, stories, conversations in both directions.
	_, err = relations.CreateFollow(ctx, victim.ID, survivor.ID)
	require.NoError(t, err)
	_, err = relations.CreateFollow(ctx, survivor.ID, victim.ID)
	require.NoError(t, err)
	require.NoError(t, stories.Create(ctx, &models.Story{UserID: victim.ID, Text: "story"}))
	require.NoError(t, conversations.Create(ctx, &models.Conversation{FirstMemberID: victim.ID, SecondMemberID: survivor.ID}))

	require.NoError(t, users.DeleteCascade(ctx, victim.ID))

	t.Run("user is gone", func(t *testing.T) {
		_, err := users.GetByID(ctx, victim.ID)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
	})

	t.Run("victim posts and their dependents are gone", func(t *testing.T) {
		_, err := posts.GetByID(ctx, victimPost.ID, 0)
		assert.Error(t, err)

		// Survivor's comment lived on the victim's post, so it dies with it.
		var count int64
		testDB.Model(&models.Comment{}).Where("post_id = ?", victimPost.ID).Count(&count)
		assert.Zero(t, count)
	})

	t.Run("survivor post survives, stripped of victim leaves", func(t *testing.T) {
		got, err := posts.GetByID(ctx, survivorPost.ID, 0)
		require.NoError(t, err)
		assert.Zero(t, got.LikesCount)

		// Victim's comment is gone, survivor's remains.
		list, err := comments.GetByPostID(ctx, survivorPost.ID, 50, 0, 0)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, survivorComment.ID, list[0].ID)

		// Survivor's comment lost the victim's reply and like but survives.
		assert.Empty(t, list[0].Replies)
		assert.Zero(t, list[0].LikesCount)
	})

	t.Run("no edge rows reference the victim", func(t *testing.T) {
		followers, err := relations.GetFollowers(ctx, survivor.ID)
		require.NoError(t, err)
		assert.Empty(t, followers)

		var count int64
		testDB.Model(&models.Follow{}).
			Where("follower_id = ? OR followee_id = ?", victim.ID, victim.ID).Count(&count)
		assert.Zero(t, count)

		testDB.Model(&models.Story{}).Where("user_id = ?", victim.ID).Count(&count)
		assert.Zero(t, count)

		convs, err := conversations.GetByUserID(ctx, survivor.ID)
		require.NoError(t, err)
		assert.Empty(t, convs)
	})

	t.Run("second delete reports NotFound", func(t *testing.T) {
		err := users.DeleteCascade(ctx, victim.ID)
		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "NOT_FOUND", appErr.Code)
	})
}
