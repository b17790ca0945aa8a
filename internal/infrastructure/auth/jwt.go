package authinfra

import (
	"errors"
	"time"

	authDomain "github.com/abdhesh369/Portfolio-sub001/internal/domain/auth"

	"github.com/golang-jwt/jwt/v5"
)

// JWTIssuer 簽發/驗證管理員 session token（HS256、固定 24 小時效期）。
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTIssuer 建立 JWT 簽發器。secret 長度於組態驗證時已確認。
func NewJWTIssuer(secret string, ttl time.Duration) *JWTIssuer {
	return &JWTIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Claims 定義 session token 的 payload。
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Issue 產生帶有 admin 角色的 session token。
func (j *JWTIssuer) Issue() (string, time.Time, error) {
	now := j.now()
	exp := now.Add(j.ttl)
	claims := Claims{
		Role: string(authDomain.RoleAdmin),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   authDomain.AdminSubject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// ParseToken 驗證簽章與效期並解析 claims。
// 簽章、格式或效期任何一項不符都回傳 ErrTokenInvalid。
func (j *JWTIssuer) ParseToken(token string) (Claims, error) {
	var claims Claims
	tkn, err := jwt.ParseWithClaims(token, &claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return j.secret, nil
	}, jwt.WithTimeFunc(j.now))
	if err != nil || !tkn.Valid {
		return Claims{}, authDomain.ErrTokenInvalid
	}
	return claims, nil
}
