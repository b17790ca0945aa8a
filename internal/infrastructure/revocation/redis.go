package revocation

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore 以 Redis 保存撤銷清單，可跨實例共享並在重啟後保留。
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore 建立 Redis 撤銷清單。
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) key(token string) string {
	return fmt.Sprintf("%s:revoked:%s", s.prefix, hashToken(token))
}

// Revoke 寫入撤銷鍵，EX 為 token 剩餘效期。
func (s *RedisStore) Revoke(ctx context.Context, token string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, s.key(token), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token in redis: %w", err)
	}
	return nil
}

// IsRevoked 查詢撤銷鍵是否存在。
func (s *RedisStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(token)).Result()
	if err != nil {
		return false, fmt.Errorf("check revocation in redis: %w", err)
	}
	return n > 0, nil
}

// Close 不關閉連線；client 由建立者持有，可能與其他元件共用。
func (s *RedisStore) Close() error {
	return nil
}
