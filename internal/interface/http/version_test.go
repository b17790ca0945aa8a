package httpapi

import (
	"net/http"
	"testing"
)

func TestVersionFallback_RedirectsLegacyPaths(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(s, http.MethodGet, "/api/projects", "")
	if w.Code != http.StatusTemporaryRedirect {
		t.Fatalf("expected 307, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/api/v1/projects" {
		t.Errorf("expected /api/v1/projects, got %s", loc)
	}
}

func TestVersionFallback_PreservesMethodAndQuery(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(s, http.MethodPost, "/api/messages?src=footer", `{"name":"a"}`)
	if w.Code != http.StatusTemporaryRedirect {
		t.Fatalf("expected 307, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/api/v1/messages?src=footer" {
		t.Errorf("expected query to be preserved, got %s", loc)
	}
}

func TestVersionFallback_UnknownV1PathIs404(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(s, http.MethodGet, "/api/v1/no-such-thing", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "" {
		t.Errorf("v1 paths must not redirect, got Location %s", loc)
	}
	if body := decodeBody(t, w); body["error_code"] != errCodeNotFound {
		t.Errorf("expected %s, got %v", errCodeNotFound, body["error_code"])
	}
}

func TestVersionFallback_NonAPIPathIs404(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(s, http.MethodGet, "/whatever", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
