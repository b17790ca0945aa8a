package ratelimit

import (
	"context"
	"time"
)

// Result 為一次取額的判定結果，供 HTTP 層輸出限流標頭。
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Limiter 以固定視窗計數限制單一 key 的請求頻率。
// Take 先扣後判：超額的請求一樣計入視窗。
// Undo 把一次 Take 退回，用於「成功即不計數」的情境。
type Limiter interface {
	Take(ctx context.Context, key string) (Result, error)
	Undo(ctx context.Context, key string) error
	Close() error
}

// Config 定義單一視窗的額度。
type Config struct {
	Max    int
	Window time.Duration
}
