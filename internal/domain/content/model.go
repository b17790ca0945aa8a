package content

import "time"

// Project 為作品集項目。
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tech        []string  `json:"tech"`
	ImageURL    string    `json:"image_url,omitempty"`
	RepoURL     string    `json:"repo_url,omitempty"`
	LiveURL     string    `json:"live_url,omitempty"`
	Featured    bool      `json:"featured"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Validate 基本欄位檢查。
func (p Project) Validate() error {
	var v validator
	v.require("title", p.Title)
	v.require("description", p.Description)
	v.maxLen("title", p.Title, 200)
	return v.result()
}

// Skill 為技能項目，依 category 分組呈現。
type Skill struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Level     int    `json:"level"`
	SortOrder int    `json:"sort_order"`
}

func (s Skill) Validate() error {
	var v validator
	v.require("name", s.Name)
	v.require("category", s.Category)
	if s.Level < 0 || s.Level > 100 {
		v.add("level", "must be between 0 and 100")
	}
	return v.result()
}

// Experience 為工作/學習經歷。
type Experience struct {
	ID        string     `json:"id"`
	Role      string     `json:"role"`
	Company   string     `json:"company"`
	Location  string     `json:"location,omitempty"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"` // nil 表示至今
	Summary   string     `json:"summary,omitempty"`
	SortOrder int        `json:"sort_order"`
}

func (e Experience) Validate() error {
	var v validator
	v.require("role", e.Role)
	v.require("company", e.Company)
	if e.StartDate.IsZero() {
		v.add("start_date", "is required")
	}
	if e.EndDate != nil && e.EndDate.Before(e.StartDate) {
		v.add("end_date", "must be after start_date")
	}
	return v.result()
}

// Testimonial 為訪客推薦語，僅顯示已核准項目。
type Testimonial struct {
	ID         string    `json:"id"`
	Author     string    `json:"author"`
	AuthorRole string    `json:"author_role,omitempty"`
	Quote      string    `json:"quote"`
	AvatarURL  string    `json:"avatar_url,omitempty"`
	Approved   bool      `json:"approved"`
	CreatedAt  time.Time `json:"created_at"`
}

func (t Testimonial) Validate() error {
	var v validator
	v.require("author", t.Author)
	v.require("quote", t.Quote)
	v.maxLen("quote", t.Quote, 1000)
	return v.result()
}
