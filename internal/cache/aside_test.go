package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestAside_MissThenHit(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	fetches := 0
	fetch := func(dest *cachedUser) func() error {
		return func() error {
			fetches++
			dest.ID = 7
			dest.Username = "river"
			return nil
		}
	}

	var first cachedUser
	require.NoError(t, Aside(ctx, UserKey(7), &first, UserTTL, fetch(&first)))
	assert.Equal(t, 1, fetches)
	assert.Equal(t, "river", first.Username)

	// Second read comes from cache, fetch is not called again
	var second cachedUser
	require.NoError(t, Aside(ctx, UserKey(7), &second, UserTTL, fetch(&second)))
	assert.Equal(t, 1, fetches)
	assert.Equal(t, first, second)
}

func TestAside_TTLExpiry(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	fetches := 0
	var u cachedUser
	fetch := func() error {
		fetches++
		u.ID = 3
		return nil
	}

	require.NoError(t, Aside(ctx, UserKey(3), &u, time.Minute, fetch))
	mr.FastForward(2 * time.Minute)
	require.NoError(t, Aside(ctx, UserKey(3), &u, time.Minute, fetch))
	assert.Equal(t, 2, fetches)
}

func TestInvalidate(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, UserKey(9), cachedUser{ID: 9}, UserTTL))
	InvalidateUser(ctx, 9)

	var u cachedUser
	found, err := GetJSON(ctx, UserKey(9), &u)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestGetJSON_NilClient(t *testing.T) {
	SetClient(nil)
	var u cachedUser
	found, err := GetJSON(context.Background(), UserKey(1), &u)
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestKeyClass(t *testing.T) {
	assert.Equal(t, "user:*", keyClass(UserKey(42)))
	assert.Equal(t, "user:*:followers", keyClass(FollowersKey(42)))
	assert.Equal(t, "post:*", keyClass(PostKey(1)))
}
