package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

type window struct {
	count   int
	resetAt time.Time
}

// MemoryLimiter 為單一程序內的固定視窗限流器。
// ttlcache 在視窗結束時自動淘汰項目，下一次 Take 即開新視窗。
type MemoryLimiter struct {
	mu    sync.Mutex
	cache *ttlcache.Cache[string, *window]
	cfg   Config
	now   func() time.Time
}

// NewMemoryLimiter 建立記憶體限流器並啟動自動清理。
func NewMemoryLimiter(cfg Config) *MemoryLimiter {
	cache := ttlcache.New(
		ttlcache.WithDisableTouchOnHit[string, *window](),
	)
	go cache.Start()

	return &MemoryLimiter{
		cache: cache,
		cfg:   cfg,
		now:   time.Now,
	}
}

// Take 對 key 計入一次請求並回傳視窗狀態。
func (l *MemoryLimiter) Take(_ context.Context, key string) (Result, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	var w *window
	if item := l.cache.Get(key); item != nil && now.Before(item.Value().resetAt) {
		w = item.Value()
	} else {
		w = &window{resetAt: now.Add(l.cfg.Window)}
		l.cache.Set(key, w, l.cfg.Window)
	}

	w.count++
	remaining := l.cfg.Max - w.count
	if remaining < 0 {
		remaining = 0
	}

	return Result{
		Allowed:   w.count <= l.cfg.Max,
		Limit:     l.cfg.Max,
		Remaining: remaining,
		ResetAt:   w.resetAt,
	}, nil
}

// Undo 退回一次 Take；視窗不存在或已歸零則為 no-op。
func (l *MemoryLimiter) Undo(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if item := l.cache.Get(key); item != nil && item.Value().count > 0 {
		item.Value().count--
	}
	return nil
}

// Close 停止清理 goroutine。
func (l *MemoryLimiter) Close() error {
	l.cache.Stop()
	return nil
}
