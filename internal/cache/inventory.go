package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix              = "user:%d"
	BrandProfileKeyPrefix      = "brand_profile:user:%d"
	InfluencerProfileKeyPrefix = "influencer_profile:user:%d"
	InstagramKeyPrefix         = "instagram:%s"
)

const (
	UserTTL      = 5 * time.Minute
	ProfileTTL   = 10 * time.Minute
	InstagramTTL = 30 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func BrandProfileKey(userID uint) string {
	return fmt.Sprintf(BrandProfileKeyPrefix, userID)
}

func InfluencerProfileKey(userID uint) string {
	return fmt.Sprintf(InfluencerProfileKeyPrefix, userID)
}

func InstagramKey(username string) string {
	return fmt.Sprintf(InstagramKeyPrefix, username)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateBrandProfile(ctx context.Context, userID uint) {
	Invalidate(ctx, BrandProfileKey(userID))
}

func InvalidateInfluencerProfile(ctx context.Context, userID uint) {
	Invalidate(ctx, InfluencerProfileKey(userID))
}
