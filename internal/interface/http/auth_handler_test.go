package httpapi

import (
	"net/http"
	"testing"
)

func TestLogin_Success(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(s, http.MethodPost, "/api/v1/auth/login", `{"password":"`+testPassword+`"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["token"] == "" || body["token"] == nil {
		t.Error("expected token in response")
	}
	if body["token_type"] != "Bearer" {
		t.Errorf("expected Bearer token type, got %v", body["token_type"])
	}

	var sessionCookie *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == sessionCookieName {
			sessionCookie = ck
		}
	}
	if sessionCookie == nil {
		t.Fatal("expected session cookie to be set")
	}
	if !sessionCookie.HttpOnly {
		t.Error("session cookie must be HttpOnly")
	}
	if sessionCookie.SameSite != http.SameSiteStrictMode {
		t.Error("session cookie must be SameSite=Strict")
	}
	if sessionCookie.MaxAge <= 0 {
		t.Error("session cookie must carry a positive max age")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(s, http.MethodPost, "/api/v1/auth/login", `{"password":"nope"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if body := decodeBody(t, w); body["error_code"] != errCodeInvalidCredentials {
		t.Errorf("expected %s, got %v", errCodeInvalidCredentials, body["error_code"])
	}
}

func TestLogin_MissingBody(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(s, http.MethodPost, "/api/v1/auth/login", `{`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", w.Code)
	}

	// 缺少密碼是 400，不是 401：不走憑證驗證也不觸發失敗延遲
	w = doJSON(s, http.MethodPost, "/api/v1/auth/login", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing password, got %d", w.Code)
	}
	if body := decodeBody(t, w); body["error_code"] != errCodeBadRequest {
		t.Errorf("expected %s, got %v", errCodeBadRequest, body["error_code"])
	}
}

func TestAuthStatus_ReportsIdentity(t *testing.T) {
	s := newTestServer(t)
	token := loginToken(t, s)

	w := doJSON(s, http.MethodGet, "/api/v1/auth/status", "", func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["authenticated"] != true {
		t.Errorf("expected authenticated true, got %v", body["authenticated"])
	}
	user, _ := body["user"].(map[string]interface{})
	if user["subject"] != "admin" || user["role"] != "admin" {
		t.Errorf("unexpected user object: %v", user)
	}
	if user["expires_at"] == nil {
		t.Error("expected expires_at for token-based identity")
	}
}

func TestLogout_ClearsCookieAndRevokes(t *testing.T) {
	s := newTestServer(t)
	token := loginToken(t, s)

	w := doJSON(s, http.MethodPost, "/api/v1/auth/logout", "", func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	cleared := false
	for _, ck := range w.Result().Cookies() {
		if ck.Name == sessionCookieName && ck.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("expected session cookie to be expired on logout")
	}

	// 同一 token 經 cookie 通道也應被拒
	w = doJSON(s, http.MethodGet, "/api/v1/auth/status", "", func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", w.Code)
	}
}

func TestLogout_WithAPIKeyIsNoop(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(s, http.MethodPost, "/api/v1/auth/logout", "", withAPIKey)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	// API key 不受登出影響
	w = doJSON(s, http.MethodGet, "/api/v1/auth/status", "", withAPIKey)
	if w.Code != http.StatusOK {
		t.Errorf("api key should still authenticate after logout, got %d", w.Code)
	}
}
