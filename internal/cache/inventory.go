package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix      = "user:%d"
	PostKeyPrefix      = "post:%d"
	FollowersKeyPrefix = "user:%d:followers"
	FollowingKeyPrefix = "user:%d:following"
	StoryFeedKeyPrefix = "user:%d:storyfeed"
)

const (
	UserTTL      = 5 * time.Minute
	PostTTL      = 30 * time.Minute
	RelationTTL  = 2 * time.Minute
	StoryFeedTTL = time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

func FollowersKey(userID uint) string {
	return fmt.Sprintf(FollowersKeyPrefix, userID)
}

func FollowingKey(userID uint) string {
	return fmt.Sprintf(FollowingKeyPrefix, userID)
}

func StoryFeedKey(userID uint) string {
	return fmt.Sprintf(StoryFeedKeyPrefix, userID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
}

// InvalidateRelations drops the cached follower/following projections for a user.
func InvalidateRelations(ctx context.Context, userID uint) {
	Invalidate(ctx, FollowersKey(userID))
	Invalidate(ctx, FollowingKey(userID))
	Invalidate(ctx, StoryFeedKey(userID))
}
