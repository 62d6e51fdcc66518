package redis

import (
	"context"
	"fmt"
)

// InvalidateUser удаляет все закэшированные представления пользователя
func (c *Client) InvalidateUser(ctx context.Context, userID int64) error {
	pattern := fmt.Sprintf("analytics:user:%d:*", userID)

	iter := c.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan pattern %s: %w", pattern, err)
	}

	if len(keys) == 0 {
		return nil
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete views of user %d: %w", userID, err)
	}
	return nil
}
