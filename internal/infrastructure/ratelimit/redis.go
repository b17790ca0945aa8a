package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter 以 Redis 計數器實作固定視窗限流，可跨實例共享額度。
type RedisLimiter struct {
	client *redis.Client
	prefix string
	cfg    Config
}

// NewRedisLimiter 建立 Redis 限流器。
func NewRedisLimiter(client *redis.Client, prefix string, cfg Config) *RedisLimiter {
	return &RedisLimiter{client: client, prefix: prefix, cfg: cfg}
}

func (l *RedisLimiter) key(key string) string {
	return fmt.Sprintf("%s:ratelimit:%s", l.prefix, key)
}

// Take 以 INCR 計入一次請求，首個請求同時設定視窗 TTL。
func (l *RedisLimiter) Take(ctx context.Context, key string) (Result, error) {
	k := l.key(key)

	count, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return Result{}, fmt.Errorf("increment rate counter: %w", err)
	}
	if count == 1 {
		if err := l.client.Expire(ctx, k, l.cfg.Window).Err(); err != nil {
			return Result{}, fmt.Errorf("set rate window ttl: %w", err)
		}
	}

	ttl, err := l.client.TTL(ctx, k).Result()
	if err != nil || ttl < 0 {
		ttl = l.cfg.Window
	}

	remaining := l.cfg.Max - int(count)
	if remaining < 0 {
		remaining = 0
	}

	return Result{
		Allowed:   int(count) <= l.cfg.Max,
		Limit:     l.cfg.Max,
		Remaining: remaining,
		ResetAt:   time.Now().Add(ttl),
	}, nil
}

// Undo 以 DECR 退回一次 Take。
func (l *RedisLimiter) Undo(ctx context.Context, key string) error {
	k := l.key(key)
	n, err := l.client.Decr(ctx, k).Result()
	if err != nil {
		return fmt.Errorf("decrement rate counter: %w", err)
	}
	if n < 0 {
		// 不讓計數器變成負值
		l.client.Set(ctx, k, 0, redis.KeepTTL)
	}
	return nil
}

// Close 不關閉連線；client 由建立者持有，可能與其他元件共用。
func (l *RedisLimiter) Close() error {
	return nil
}
