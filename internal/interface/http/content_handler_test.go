package httpapi

import (
	"context"
	"net/http"
	"testing"

	"github.com/abdhesh369/Portfolio-sub001/internal/domain/content"
)

func TestProjects_PublicRead(t *testing.T) {
	s := newTestServer(t)
	seed, _ := s.Store().CreateProject(context.Background(), content.Project{
		Title:       "Portfolio",
		Description: "My site",
		Featured:    true,
	})
	s.Store().CreateProject(context.Background(), content.Project{
		Title:       "Side project",
		Description: "Experiment",
	})

	w := doJSON(s, http.MethodGet, "/api/v1/projects", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	projects, _ := body["projects"].([]interface{})
	if len(projects) != 2 {
		t.Errorf("expected 2 projects, got %d", len(projects))
	}

	w = doJSON(s, http.MethodGet, "/api/v1/projects?featured=true", "")
	body = decodeBody(t, w)
	projects, _ = body["projects"].([]interface{})
	if len(projects) != 1 {
		t.Errorf("expected 1 featured project, got %d", len(projects))
	}

	w = doJSON(s, http.MethodGet, "/api/v1/projects/"+seed.ID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = doJSON(s, http.MethodGet, "/api/v1/projects/missing", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown id, got %d", w.Code)
	}
}

func TestProjects_WriteRequiresAuth(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(s, http.MethodPost, "/api/v1/projects", `{"title":"x","description":"y"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without credential, got %d", w.Code)
	}

	w = doJSON(s, http.MethodPost, "/api/v1/projects", `{"title":"x","description":"y"}`, withAPIKey)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 with api key, got %d: %s", w.Code, w.Body.String())
	}
}

func TestProjects_ValidationError(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(s, http.MethodPost, "/api/v1/projects", `{"title":"","description":""}`, withAPIKey)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["error_code"] != errCodeValidation {
		t.Errorf("expected %s, got %v", errCodeValidation, body["error_code"])
	}
	fields, _ := body["fields"].(map[string]interface{})
	if fields["title"] == nil || fields["description"] == nil {
		t.Errorf("expected field errors for title and description, got %v", fields)
	}
}

func TestArticles_SlugConflictIs409(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(s, http.MethodPost, "/api/v1/articles", `{"title":"One","slug":"hello","body":"b"}`, withAPIKey)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(s, http.MethodPost, "/api/v1/articles", `{"title":"Two","slug":"hello","body":"b"}`, withAPIKey)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
	if body := decodeBody(t, w); body["error_code"] != errCodeConflict {
		t.Errorf("expected %s, got %v", errCodeConflict, body["error_code"])
	}
}

func TestArticles_DraftsHiddenFromPublic(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	s.Store().CreateArticle(ctx, content.Article{Title: "Live", Slug: "live", Body: "b", Published: true})
	s.Store().CreateArticle(ctx, content.Article{Title: "Draft", Slug: "draft", Body: "b"})

	w := doJSON(s, http.MethodGet, "/api/v1/articles", "")
	body := decodeBody(t, w)
	articles, _ := body["articles"].([]interface{})
	if len(articles) != 1 {
		t.Errorf("expected only published article in public list, got %d", len(articles))
	}

	w = doJSON(s, http.MethodGet, "/api/v1/articles/draft", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for draft slug, got %d", w.Code)
	}

	// 管理端看得到全部
	w = doJSON(s, http.MethodGet, "/api/v1/admin/articles", "", withAPIKey)
	body = decodeBody(t, w)
	articles, _ = body["articles"].([]interface{})
	if len(articles) != 2 {
		t.Errorf("expected both articles in admin list, got %d", len(articles))
	}
}

func TestTestimonials_PublicSubmissionNeedsApproval(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(s, http.MethodPost, "/api/v1/testimonials", `{"author":"Alice","quote":"Great work","approved":true}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	// 未核准前公開列表不顯示
	w = doJSON(s, http.MethodGet, "/api/v1/testimonials", "")
	body := decodeBody(t, w)
	list, _ := body["testimonials"].([]interface{})
	if len(list) != 0 {
		t.Errorf("expected no testimonials before approval, got %d", len(list))
	}

	w = doJSON(s, http.MethodGet, "/api/v1/admin/testimonials", "", withAPIKey)
	body = decodeBody(t, w)
	list, _ = body["testimonials"].([]interface{})
	if len(list) != 1 {
		t.Fatalf("expected pending testimonial in admin list, got %d", len(list))
	}
	item, _ := list[0].(map[string]interface{})
	id, _ := item["id"].(string)

	w = doJSON(s, http.MethodPut, "/api/v1/testimonials/"+id, `{"author":"Alice","quote":"Great work","approved":true}`, withAPIKey)
	if w.Code != http.StatusOK {
		t.Fatalf("approve failed: %d", w.Code)
	}

	w = doJSON(s, http.MethodGet, "/api/v1/testimonials", "")
	body = decodeBody(t, w)
	list, _ = body["testimonials"].([]interface{})
	if len(list) != 1 {
		t.Errorf("expected approved testimonial to be public, got %d", len(list))
	}
}

func TestMessages_ContactFormFlow(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(s, http.MethodPost, "/api/v1/messages", `{"name":"Bob","email":"bob@example.com","body":"hello"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(s, http.MethodPost, "/api/v1/messages", `{"name":"Bob","email":"not-an-email","body":"hello"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad email, got %d", w.Code)
	}

	// 讀取訊息需要管理員身分
	w = doJSON(s, http.MethodGet, "/api/v1/messages", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}

	w = doJSON(s, http.MethodGet, "/api/v1/messages", "", withAPIKey)
	body := decodeBody(t, w)
	messages, _ := body["messages"].([]interface{})
	if len(messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(messages))
	}
	item, _ := messages[0].(map[string]interface{})
	id, _ := item["id"].(string)

	w = doJSON(s, http.MethodPost, "/api/v1/messages/"+id+"/read", "", withAPIKey)
	if w.Code != http.StatusOK {
		t.Fatalf("mark read failed: %d", w.Code)
	}

	w = doJSON(s, http.MethodGet, "/api/v1/messages?unread=true", "", withAPIKey)
	body = decodeBody(t, w)
	messages, _ = body["messages"].([]interface{})
	if len(messages) != 0 {
		t.Errorf("expected no unread messages, got %d", len(messages))
	}
}

func TestSEO_CrudAndConflict(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(s, http.MethodPost, "/api/v1/seo", `{"page":"home","title":"Home"}`, withAPIKey)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(s, http.MethodPost, "/api/v1/seo", `{"page":"home","title":"Again"}`, withAPIKey)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate page, got %d", w.Code)
	}

	// 公開讀取
	w = doJSON(s, http.MethodGet, "/api/v1/seo/home", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	setting, _ := body["setting"].(map[string]interface{})
	if setting["title"] != "Home" {
		t.Errorf("expected Home title, got %v", setting["title"])
	}

	w = doJSON(s, http.MethodPut, "/api/v1/seo/home", `{"page":"home","title":"New Home"}`, withAPIKey)
	if w.Code != http.StatusOK {
		t.Fatalf("update failed: %d", w.Code)
	}

	w = doJSON(s, http.MethodDelete, "/api/v1/seo/home", "", withAPIKey)
	if w.Code != http.StatusOK {
		t.Fatalf("delete failed: %d", w.Code)
	}
	w = doJSON(s, http.MethodGet, "/api/v1/seo/home", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", w.Code)
	}
}

func TestAnalytics_TrackAndStats(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(s, http.MethodPost, "/api/v1/analytics/track", `{"path":"/projects"}`)
	if w.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", w.Code)
	}
	doJSON(s, http.MethodPost, "/api/v1/analytics/track", `{"path":"/projects"}`)
	doJSON(s, http.MethodPost, "/api/v1/analytics/track", `{"path":"/about"}`)

	// 統計是管理端功能
	w = doJSON(s, http.MethodGet, "/api/v1/admin/analytics/stats", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}

	w = doJSON(s, http.MethodGet, "/api/v1/admin/analytics/stats", "", withAPIKey)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	stats, _ := body["stats"].([]interface{})
	if len(stats) != 2 {
		t.Fatalf("expected 2 paths, got %d", len(stats))
	}
	first, _ := stats[0].(map[string]interface{})
	if first["path"] != "/projects" || first["count"] != float64(2) {
		t.Errorf("expected /projects with 2 views first, got %v", first)
	}
}
