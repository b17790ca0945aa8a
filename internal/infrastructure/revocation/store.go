package revocation

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Store 記錄被明確撤銷、但尚未自然到期的 session token。
// 寫入時即附帶到期時間，過期項目由底層存儲自動清除，
// 因此清單不會無限成長；撤銷具單調性，重複撤銷為 no-op。
type Store interface {
	Revoke(ctx context.Context, token string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, token string) (bool, error)
	Close() error
}

// hashToken 以 SHA-256 縮短並遮蔽 token，存儲中不保留原文。
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
