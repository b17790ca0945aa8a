package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	authDomain "github.com/abdhesh369/Portfolio-sub001/internal/domain/auth"
	"github.com/abdhesh369/Portfolio-sub001/internal/infrastructure/revocation"
)

type stubVerifier struct{ password string }

func (s stubVerifier) VerifyPassword(p string) bool { return p == s.password }

type stubIssuer struct {
	token string
	err   error
}

func (s stubIssuer) Issue() (string, time.Time, error) {
	return s.token, time.Now().Add(time.Hour), s.err
}

func TestLoginUseCase_Success(t *testing.T) {
	uc := NewLoginUseCase(stubVerifier{password: "secret"}, stubIssuer{token: "tok"}, 0)

	res, err := uc.Execute(context.Background(), "secret")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if res.Token != "tok" {
		t.Errorf("expected issued token, got %q", res.Token)
	}
	if !res.ExpiresAt.After(time.Now()) {
		t.Error("expected future expiry")
	}
}

func TestLoginUseCase_WrongPassword(t *testing.T) {
	uc := NewLoginUseCase(stubVerifier{password: "secret"}, stubIssuer{token: "tok"}, 0)

	if _, err := uc.Execute(context.Background(), "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := uc.Execute(context.Background(), ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
}

func TestLoginUseCase_FailureIsDelayed(t *testing.T) {
	uc := NewLoginUseCase(stubVerifier{password: "secret"}, stubIssuer{token: "tok"}, 50*time.Millisecond)

	start := time.Now()
	uc.Execute(context.Background(), "wrong")
	if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
		t.Errorf("expected at least 50ms delay on failure, got %v", elapsed)
	}

	// 成功路徑不延遲
	start = time.Now()
	if _, err := uc.Execute(context.Background(), "secret"); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 40*time.Millisecond {
		t.Errorf("success should not be delayed, took %v", elapsed)
	}
}

func TestLoginUseCase_DelayHonorsContext(t *testing.T) {
	uc := NewLoginUseCase(stubVerifier{password: "secret"}, stubIssuer{token: "tok"}, time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := uc.Execute(ctx, "wrong")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected context deadline error, got %v", err)
	}
	if time.Since(start) > time.Second {
		t.Error("delay should abort with the context")
	}
}

func TestLogoutUseCase_RevokesToken(t *testing.T) {
	store := revocation.NewMemoryStore()
	defer store.Close()
	uc := NewLogoutUseCase(store)
	ctx := context.Background()

	id := authDomain.Identity{
		Subject:   authDomain.AdminSubject,
		Method:    authDomain.MethodBearer,
		Token:     "tok-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	if err := uc.Execute(ctx, id); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	revoked, _ := store.IsRevoked(ctx, "tok-1")
	if !revoked {
		t.Error("expected token to be revoked after logout")
	}
}

func TestLogoutUseCase_APIKeyIsNoop(t *testing.T) {
	store := revocation.NewMemoryStore()
	defer store.Close()
	uc := NewLogoutUseCase(store)

	id := authDomain.Identity{
		Subject: authDomain.AdminSubject,
		Method:  authDomain.MethodAPIKey,
	}
	if err := uc.Execute(context.Background(), id); err != nil {
		t.Errorf("logout with api key should be a no-op, got %v", err)
	}
}
