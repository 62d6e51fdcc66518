package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	redisv9 "github.com/redis/go-redis/v9"
)

func viewKey(userID int64, view string) string {
	return fmt.Sprintf("analytics:user:%d:%s", userID, view)
}

func (c *Client) GetView(ctx context.Context, userID int64, view string, dest interface{}) (bool, error) {
	data, err := c.rdb.Get(ctx, viewKey(userID, view)).Bytes()
	if errors.Is(err, redisv9.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get view %s: %w", view, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal view %s: %w", view, err)
	}
	return true, nil
}

func (c *Client) SetView(ctx context.Context, userID int64, view string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal view %s: %w", view, err)
	}
	return c.rdb.Set(ctx, viewKey(userID, view), data, c.ttl).Err()
}
