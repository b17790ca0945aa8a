package revocation

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// MemoryStore 為單一程序內的撤銷清單，重啟即清空；
// token 自然到期上限 24 小時，曝險時間可接受。
type MemoryStore struct {
	cache *ttlcache.Cache[string, struct{}]
}

// NewMemoryStore 建立記憶體撤銷清單並啟動自動清理。
func NewMemoryStore() *MemoryStore {
	cache := ttlcache.New(
		ttlcache.WithDisableTouchOnHit[string, struct{}](),
	)
	go cache.Start()

	return &MemoryStore{cache: cache}
}

// Revoke 寫入撤銷項目，TTL 為 token 的剩餘效期。
func (s *MemoryStore) Revoke(_ context.Context, token string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		// 已過期的 token 本來就無法通過驗證
		return nil
	}
	s.cache.Set(hashToken(token), struct{}{}, ttl)
	return nil
}

// IsRevoked 查詢 token 是否在撤銷清單內。
func (s *MemoryStore) IsRevoked(_ context.Context, token string) (bool, error) {
	return s.cache.Get(hashToken(token)) != nil, nil
}

// Close 停止清理 goroutine。
func (s *MemoryStore) Close() error {
	s.cache.Stop()
	return nil
}
