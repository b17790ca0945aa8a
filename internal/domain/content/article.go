package content

import (
	"regexp"
	"time"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Article 為部落格文章；slug 全域唯一。
type Article struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt,omitempty"`
	Body        string     `json:"body"`
	CoverURL    string     `json:"cover_url,omitempty"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (a Article) Validate() error {
	var v validator
	v.require("title", a.Title)
	v.require("slug", a.Slug)
	v.require("body", a.Body)
	v.maxLen("title", a.Title, 200)
	if a.Slug != "" && !slugPattern.MatchString(a.Slug) {
		v.add("slug", "must be lowercase letters, digits and hyphens")
	}
	return v.result()
}
