package redis

import (
	"context"
	"fmt"
)

// RedisHealthChecker は権限キャッシュとして使うRedisの疎通確認を行う。
type RedisHealthChecker struct {
	client *RedisClient
}

func NewRedisHealthChecker(client *RedisClient) *RedisHealthChecker {
	return &RedisHealthChecker{client: client}
}

func (c *RedisHealthChecker) Name() string {
	return "redis"
}

func (c *RedisHealthChecker) Check(ctx context.Context) error {
	if err := c.client.Ping(ctx); err != nil {
		return fmt.Errorf("Redisへの疎通確認に失敗しました: %w", err)
	}
	return nil
}
