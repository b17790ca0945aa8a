package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	authDomain "github.com/abdhesh369/Portfolio-sub001/internal/domain/auth"
	"github.com/abdhesh369/Portfolio-sub001/internal/infrastructure/revocation"
)

// ErrInvalidCredentials 表示密碼驗證失敗；不透露更細的原因。
var ErrInvalidCredentials = errors.New("invalid credentials")

// CredentialVerifier 驗證管理員密碼。
type CredentialVerifier interface {
	VerifyPassword(password string) bool
}

// TokenIssuer 簽發 session token。
type TokenIssuer interface {
	Issue() (token string, expiresAt time.Time, err error)
}

// LoginUseCase 驗證密碼並簽發 token。
// 驗證失敗時延遲固定時間再回應，拉平暴力嘗試的節奏。
type LoginUseCase struct {
	verifier  CredentialVerifier
	tokens    TokenIssuer
	failDelay time.Duration
}

func NewLoginUseCase(verifier CredentialVerifier, tokens TokenIssuer, failDelay time.Duration) *LoginUseCase {
	return &LoginUseCase{
		verifier:  verifier,
		tokens:    tokens,
		failDelay: failDelay,
	}
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
}

func (uc *LoginUseCase) Execute(ctx context.Context, password string) (LoginResult, error) {
	if password == "" || !uc.verifier.VerifyPassword(password) {
		if err := uc.sleepFail(ctx); err != nil {
			return LoginResult{}, err
		}
		return LoginResult{}, ErrInvalidCredentials
	}

	token, expiresAt, err := uc.tokens.Issue()
	if err != nil {
		return LoginResult{}, fmt.Errorf("issue token: %w", err)
	}
	return LoginResult{Token: token, ExpiresAt: expiresAt}, nil
}

func (uc *LoginUseCase) sleepFail(ctx context.Context) error {
	if uc.failDelay <= 0 {
		return nil
	}
	timer := time.NewTimer(uc.failDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// LogoutUseCase 將 session token 加入撤銷清單。
type LogoutUseCase struct {
	revoked revocation.Store
}

func NewLogoutUseCase(revoked revocation.Store) *LogoutUseCase {
	return &LogoutUseCase{revoked: revoked}
}

// Execute 撤銷當前身分的 token；API key 身分沒有 token，略過。
func (uc *LogoutUseCase) Execute(ctx context.Context, id authDomain.Identity) error {
	if !id.Revocable() {
		return nil
	}
	if err := uc.revoked.Revoke(ctx, id.Token, id.ExpiresAt); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}
