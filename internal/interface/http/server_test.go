package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/abdhesh369/Portfolio-sub001/internal/infrastructure/config"
)

const (
	testSecret   = "test-secret-0123456789abcdef0123456789"
	testPassword = "correct horse battery"
	testAPIKey   = "api-key-0123456789abcdef01234567"
)

func testConfig() config.Config {
	var cfg config.Config
	cfg.HTTP.Env = config.EnvDevelopment
	cfg.Auth.Secret = testSecret
	cfg.Auth.AdminPassword = testPassword
	cfg.Auth.AdminAPIKey = testAPIKey
	cfg.Auth.TokenTTL = 24 * time.Hour
	cfg.Auth.FailDelay = 0
	cfg.RateLimit.API.Max = 100
	cfg.RateLimit.API.Window = 15 * time.Minute
	cfg.RateLimit.Login.Max = 5
	cfg.RateLimit.Login.Window = 15 * time.Minute
	return cfg
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := NewServer(testConfig(), nil, testLogger())
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func doJSON(s *Server, method, path, body string, mutate ...func(*http.Request)) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, m := range mutate {
		m(req)
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON response: %v (%s)", err, w.Body.String())
	}
	return out
}

// statusUser 取出 /auth/status 回應中的 user 物件。
func statusUser(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	body := decodeBody(t, w)
	user, ok := body["user"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected user object in status response, got %v", body)
	}
	return user
}

func withAPIKey(req *http.Request) {
	req.Header.Set("X-API-Key", testAPIKey)
}

// loginToken 走完整登入流程取得 token。
func loginToken(t *testing.T, s *Server) string {
	t.Helper()
	w := doJSON(s, http.MethodPost, "/api/v1/auth/login", `{"password":"`+testPassword+`"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatal("expected token in login response")
	}
	return token
}
