package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CheckAndSetRateLimit reserves the action for the identity until limit
// expires. A nil client disables limiting.
func CheckAndSetRateLimit(ctx context.Context, rdb *redis.Client, identityID, action string, limit time.Duration) (bool, error) {
	if rdb == nil {
		return true, nil
	}

	key := fmt.Sprintf("rate_limit:user:%s:%s", identityID, action)

	wasSet, err := rdb.SetNX(ctx, key, "locked", limit).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check rate limit in redis: %w", err)
	}

	return wasSet, nil
}

// ClearRateLimit releases a reservation early, e.g. when the guarded
// operation failed before doing any work.
func ClearRateLimit(ctx context.Context, rdb *redis.Client, identityID, action string) error {
	if rdb == nil {
		return nil
	}
	key := fmt.Sprintf("rate_limit:user:%s:%s", identityID, action)
	_, err := rdb.Del(ctx, key).Result()
	return err
}
