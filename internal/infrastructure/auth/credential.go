package authinfra

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// AdminVerifier 驗證單一管理員的密碼與 API key。
// bcrypt 雜湊於啟動時計算一次，避免每個請求重複昂貴運算。
type AdminVerifier struct {
	passwordHash []byte
	apiKey       []byte
}

// NewAdminVerifier 預先計算密碼雜湊並保存 API key。
func NewAdminVerifier(password, apiKey string) (*AdminVerifier, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AdminVerifier{
		passwordHash: hash,
		apiKey:       []byte(apiKey),
	}, nil
}

// VerifyPassword 比對明文密碼與預先計算的雜湊。
func (v *AdminVerifier) VerifyPassword(plain string) bool {
	if plain == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword(v.passwordHash, []byte(plain)) == nil
}

// VerifyAPIKey 以固定時間比較 API key，避免時間側信道洩漏長度以外的資訊。
func (v *AdminVerifier) VerifyAPIKey(candidate string) bool {
	if candidate == "" || len(v.apiKey) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare(v.apiKey, []byte(candidate)) == 1
}
