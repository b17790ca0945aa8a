package auth

import (
	"errors"
	"time"
)

// Role 定義系統角色；目前僅有單一管理員身分。
type Role string

const (
	RoleAdmin Role = "admin"
)

// AdminSubject 為管理員 token 的固定 subject。
const AdminSubject = "admin"

// Method 表示憑證的來源通道。
type Method string

const (
	MethodBearer Method = "bearer"
	MethodCookie Method = "cookie"
	MethodAPIKey Method = "api_key"
)

// Identity 表示通過驗證的請求主體。
type Identity struct {
	Subject string
	Role    Role
	Method  Method
	// Token 為實際出示的 session token；API key 通道下為空。
	Token     string
	ExpiresAt time.Time
}

// IsAdmin 檢查是否具管理員身分。
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// Revocable 回傳此憑證是否可被撤銷（API key 無對應 token，不可撤銷）。
func (i Identity) Revocable() bool {
	return i.Token != ""
}

// 驗證失敗的原因，分別對應不同的 401 錯誤碼。
var (
	ErrNoCredential = errors.New("no credential presented")
	ErrTokenRevoked = errors.New("token has been revoked")
	ErrTokenInvalid = errors.New("token invalid or expired")
)
