package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abdhesh369/Portfolio-sub001/internal/domain/content"
)

// Store 為未設定資料庫時使用的記憶體存儲，開發與測試用；重啟即清空。
type Store struct {
	mu           sync.RWMutex
	projects     map[string]content.Project
	skills       map[string]content.Skill
	experiences  map[string]content.Experience
	articles     map[string]content.Article
	articleSlugs map[string]string // slug -> id
	testimonials map[string]content.Testimonial
	messages     map[string]content.Message
	seo          map[string]content.SEOSetting // page -> setting
	pageViews    []content.PageView
	now          func() time.Time
}

// NewStore 建立新的記憶體 Store 實例。
func NewStore() *Store {
	return &Store{
		projects:     make(map[string]content.Project),
		skills:       make(map[string]content.Skill),
		experiences:  make(map[string]content.Experience),
		articles:     make(map[string]content.Article),
		articleSlugs: make(map[string]string),
		testimonials: make(map[string]content.Testimonial),
		messages:     make(map[string]content.Message),
		seo:          make(map[string]content.SEOSetting),
		now:          time.Now,
	}
}

// --- projects ---

func (s *Store) ListProjects(_ context.Context, featuredOnly bool) ([]content.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []content.Project
	for _, p := range s.projects {
		if featuredOnly && !p.Featured {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) GetProject(_ context.Context, id string) (content.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.projects[id]
	if !ok {
		return content.Project{}, content.ErrNotFound
	}
	return p, nil
}

func (s *Store) CreateProject(_ context.Context, p content.Project) (content.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = uuid.NewString()
	p.CreatedAt = s.now().UTC()
	p.UpdatedAt = p.CreatedAt
	s.projects[p.ID] = p
	return p, nil
}

func (s *Store) UpdateProject(_ context.Context, p content.Project) (content.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.projects[p.ID]
	if !ok {
		return content.Project{}, content.ErrNotFound
	}
	p.CreatedAt = old.CreatedAt
	p.UpdatedAt = s.now().UTC()
	s.projects[p.ID] = p
	return p, nil
}

func (s *Store) DeleteProject(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[id]; !ok {
		return content.ErrNotFound
	}
	delete(s.projects, id)
	return nil
}

// --- skills ---

func (s *Store) ListSkills(_ context.Context) ([]content.Skill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []content.Skill
	for _, sk := range s.skills {
		out = append(out, sk)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (s *Store) CreateSkill(_ context.Context, sk content.Skill) (content.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sk.ID = uuid.NewString()
	s.skills[sk.ID] = sk
	return sk, nil
}

func (s *Store) UpdateSkill(_ context.Context, sk content.Skill) (content.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.skills[sk.ID]; !ok {
		return content.Skill{}, content.ErrNotFound
	}
	s.skills[sk.ID] = sk
	return sk, nil
}

func (s *Store) DeleteSkill(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.skills[id]; !ok {
		return content.ErrNotFound
	}
	delete(s.skills, id)
	return nil
}

// --- experiences ---

func (s *Store) ListExperiences(_ context.Context) ([]content.Experience, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []content.Experience
	for _, e := range s.experiences {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].StartDate.After(out[j].StartDate)
	})
	return out, nil
}

func (s *Store) CreateExperience(_ context.Context, e content.Experience) (content.Experience, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = uuid.NewString()
	s.experiences[e.ID] = e
	return e, nil
}

func (s *Store) UpdateExperience(_ context.Context, e content.Experience) (content.Experience, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.experiences[e.ID]; !ok {
		return content.Experience{}, content.ErrNotFound
	}
	s.experiences[e.ID] = e
	return e, nil
}

func (s *Store) DeleteExperience(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.experiences[id]; !ok {
		return content.ErrNotFound
	}
	delete(s.experiences, id)
	return nil
}

// --- articles ---

func (s *Store) ListArticles(_ context.Context, publishedOnly bool) ([]content.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []content.Article
	for _, a := range s.articles {
		if publishedOnly && !a.Published {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) GetArticleBySlug(_ context.Context, slug string) (content.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.articleSlugs[slug]
	if !ok {
		return content.Article{}, content.ErrNotFound
	}
	return s.articles[id], nil
}

func (s *Store) CreateArticle(_ context.Context, a content.Article) (content.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.articleSlugs[a.Slug]; taken {
		return content.Article{}, content.ErrSlugTaken
	}
	a.ID = uuid.NewString()
	a.CreatedAt = s.now().UTC()
	a.UpdatedAt = a.CreatedAt
	if a.Published && a.PublishedAt == nil {
		a.PublishedAt = &a.CreatedAt
	}
	s.articles[a.ID] = a
	s.articleSlugs[a.Slug] = a.ID
	return a, nil
}

func (s *Store) UpdateArticle(_ context.Context, a content.Article) (content.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.articles[a.ID]
	if !ok {
		return content.Article{}, content.ErrNotFound
	}
	if id, taken := s.articleSlugs[a.Slug]; taken && id != a.ID {
		return content.Article{}, content.ErrSlugTaken
	}
	a.CreatedAt = old.CreatedAt
	a.UpdatedAt = s.now().UTC()
	if a.Published && a.PublishedAt == nil {
		a.PublishedAt = &a.UpdatedAt
	}
	delete(s.articleSlugs, old.Slug)
	s.articles[a.ID] = a
	s.articleSlugs[a.Slug] = a.ID
	return a, nil
}

func (s *Store) DeleteArticle(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.articles[id]
	if !ok {
		return content.ErrNotFound
	}
	delete(s.articleSlugs, a.Slug)
	delete(s.articles, id)
	return nil
}

// --- testimonials ---

func (s *Store) ListTestimonials(_ context.Context, approvedOnly bool) ([]content.Testimonial, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []content.Testimonial
	for _, t := range s.testimonials {
		if approvedOnly && !t.Approved {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) CreateTestimonial(_ context.Context, t content.Testimonial) (content.Testimonial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t.ID = uuid.NewString()
	t.CreatedAt = s.now().UTC()
	s.testimonials[t.ID] = t
	return t, nil
}

func (s *Store) UpdateTestimonial(_ context.Context, t content.Testimonial) (content.Testimonial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.testimonials[t.ID]
	if !ok {
		return content.Testimonial{}, content.ErrNotFound
	}
	t.CreatedAt = old.CreatedAt
	s.testimonials[t.ID] = t
	return t, nil
}

func (s *Store) DeleteTestimonial(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.testimonials[id]; !ok {
		return content.ErrNotFound
	}
	delete(s.testimonials, id)
	return nil
}

// --- messages ---

func (s *Store) CreateMessage(_ context.Context, m content.Message) (content.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m.ID = uuid.NewString()
	m.Read = false
	m.CreatedAt = s.now().UTC()
	s.messages[m.ID] = m
	return m, nil
}

func (s *Store) ListMessages(_ context.Context, unreadOnly bool) ([]content.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []content.Message
	for _, m := range s.messages {
		if unreadOnly && m.Read {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) GetMessage(_ context.Context, id string) (content.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.messages[id]
	if !ok {
		return content.Message{}, content.ErrNotFound
	}
	return m, nil
}

func (s *Store) MarkMessageRead(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.messages[id]
	if !ok {
		return content.ErrNotFound
	}
	m.Read = true
	s.messages[id] = m
	return nil
}

func (s *Store) DeleteMessage(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.messages[id]; !ok {
		return content.ErrNotFound
	}
	delete(s.messages, id)
	return nil
}

// --- seo ---

func (s *Store) ListSEOSettings(_ context.Context) ([]content.SEOSetting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []content.SEOSetting
	for _, v := range s.seo {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.Compare(out[i].Page, out[j].Page) < 0
	})
	return out, nil
}

func (s *Store) GetSEOSetting(_ context.Context, page string) (content.SEOSetting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.seo[page]
	if !ok {
		return content.SEOSetting{}, content.ErrNotFound
	}
	return v, nil
}

func (s *Store) CreateSEOSetting(_ context.Context, v content.SEOSetting) (content.SEOSetting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.seo[v.Page]; taken {
		return content.SEOSetting{}, content.ErrSlugTaken
	}
	v.ID = uuid.NewString()
	v.UpdatedAt = s.now().UTC()
	s.seo[v.Page] = v
	return v, nil
}

func (s *Store) UpdateSEOSetting(_ context.Context, v content.SEOSetting) (content.SEOSetting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.seo[v.Page]
	if !ok {
		return content.SEOSetting{}, content.ErrNotFound
	}
	v.ID = old.ID
	v.UpdatedAt = s.now().UTC()
	s.seo[v.Page] = v
	return v, nil
}

func (s *Store) DeleteSEOSetting(_ context.Context, page string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.seo[page]; !ok {
		return content.ErrNotFound
	}
	delete(s.seo, page)
	return nil
}

// --- analytics ---

func (s *Store) RecordPageView(_ context.Context, v content.PageView) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v.ID = uuid.NewString()
	v.CreatedAt = s.now().UTC()
	s.pageViews = append(s.pageViews, v)
	return nil
}

func (s *Store) PageViewStats(_ context.Context, since time.Time) ([]content.PageViewStat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int64)
	for _, v := range s.pageViews {
		if v.CreatedAt.Before(since) {
			continue
		}
		counts[v.Path]++
	}
	out := make([]content.PageViewStat, 0, len(counts))
	for path, n := range counts {
		out = append(out, content.PageViewStat{Path: path, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Path < out[j].Path
	})
	return out, nil
}
