package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"main/model"

	"github.com/redis/go-redis/v9"
)

// ProfileCache keeps the latest derived profile snapshot in Redis so
// profile reads don't touch MongoDB. The derivation pass overwrites the
// entry after every ledger append.
type ProfileCache struct {
	client *redis.Client
	ttl    time.Duration
}

// GlobalProfileCache is set at startup; nil when Redis is unavailable.
var GlobalProfileCache *ProfileCache

func NewProfileCache(redisURL string, ttl time.Duration) (*ProfileCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &ProfileCache{client: client, ttl: ttl}, nil
}

func profileKey(userID string) string {
	return fmt.Sprintf("profile:%s", userID)
}

// SetProfile stores the derived snapshot.
func (pc *ProfileCache) SetProfile(ctx context.Context, profile *model.Profile) error {
	if profile == nil {
		return fmt.Errorf("cannot cache nil profile")
	}

	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %v", err)
	}

	if err := pc.client.Set(ctx, profileKey(profile.UserID), data, pc.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache profile: %v", err)
	}
	return nil
}

// GetProfile returns the cached snapshot, or nil on a cache miss.
func (pc *ProfileCache) GetProfile(ctx context.Context, userID string) (*model.Profile, error) {
	data, err := pc.client.Get(ctx, profileKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile from cache: %v", err)
	}

	var profile model.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %v", err)
	}
	return &profile, nil
}

// InvalidateProfile drops the cached snapshot.
func (pc *ProfileCache) InvalidateProfile(ctx context.Context, userID string) error {
	return pc.client.Del(ctx, profileKey(userID)).Err()
}
