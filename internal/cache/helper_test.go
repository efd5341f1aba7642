package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedProfile struct {
	UserID    uint   `json:"userId"`
	Followers int    `json:"followers"`
	Tier      string `json:"tier"`
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
	fetch := func(dest *cachedProfile) func() error {
		return func() error {
			fetches++
			*dest = cachedProfile{UserID: 7, Followers: 75000, Tier: "Mid-tier"}
			return nil
		}
	}

	var first cachedProfile
	require.NoError(t, Aside(ctx, InfluencerProfileKey(7), &first, ProfileTTL, fetch(&first)))
	assert.Equal(t, 1, fetches)
	assert.Equal(t, 75000, first.Followers)

	// Second read must come from the cache without invoking fetch.
	var second cachedProfile
	require.NoError(t, Aside(ctx, InfluencerProfileKey(7), &second, ProfileTTL, fetch(&second)))
	assert.Equal(t, 1, fetches)
	assert.Equal(t, first, second)
}

func TestAside_FetchErrorNotCached(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	var dest cachedProfile
	wantErr := errors.New("db down")
	err := Aside(ctx, UserKey(1), &dest, UserTTL, func() error { return wantErr })
	assert.ErrorIs(t, err, wantErr)

	found, err := GetJSON(ctx, UserKey(1), &dest)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestInvalidate(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, InfluencerProfileKey(3), cachedProfile{UserID: 3}, ProfileTTL))
	InvalidateInfluencerProfile(ctx, 3)

	var dest cachedProfile
	found, err := GetJSON(ctx, InfluencerProfileKey(3), &dest)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestGetJSON_NilClient(t *testing.T) {
	SetClient(nil)
	var dest cachedProfile
	found, err := GetJSON(context.Background(), UserKey(1), &dest)
	assert.NoError(t, err)
	assert.False(t, found)
}
