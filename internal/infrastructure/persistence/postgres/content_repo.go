package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"github.com/abdhesh369/Portfolio-sub001/internal/domain/content"
)

// isUniqueViolation 判斷是否為 Postgres 唯一鍵衝突（23505）。
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// ContentRepo 提供作品集內容（projects / skills / experiences / testimonials）的資料存取。
type ContentRepo struct {
	db *sql.DB
}

// NewContentRepo 建立內容資料存取實例。
func NewContentRepo(db *sql.DB) *ContentRepo {
	return &ContentRepo{db: db}
}

// --- projects ---

// ListProjects 依 sort_order 遞增、建立時間遞減取得全部項目。
func (r *ContentRepo) ListProjects(ctx context.Context, featuredOnly bool) ([]content.Project, error) {
	const q = `
SELECT id, title, description, tech, image_url, repo_url, live_url, featured, sort_order, created_at, updated_at
FROM projects
WHERE ($1::bool IS FALSE OR featured)
ORDER BY sort_order, created_at DESC;
`
	rows, err := r.db.QueryContext(ctx, q, featuredOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []content.Project
	for rows.Next() {
		var p content.Project
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Description, pq.Array(&p.Tech),
			&p.ImageURL, &p.RepoURL, &p.LiveURL,
			&p.Featured, &p.SortOrder, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetProject 取單一項目。
func (r *ContentRepo) GetProject(ctx context.Context, id string) (content.Project, error) {
	const q = `
SELECT id, title, description, tech, image_url, repo_url, live_url, featured, sort_order, created_at, updated_at
FROM projects WHERE id = $1;
`
	var p content.Project
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&p.ID, &p.Title, &p.Description, pq.Array(&p.Tech),
		&p.ImageURL, &p.RepoURL, &p.LiveURL,
		&p.Featured, &p.SortOrder, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return content.Project{}, content.ErrNotFound
	}
	return p, err
}

// CreateProject 新增項目並回填 id 與時間戳。
func (r *ContentRepo) CreateProject(ctx context.Context, p content.Project) (content.Project, error) {
	const q = `
INSERT INTO projects (id, title, description, tech, image_url, repo_url, live_url, featured, sort_order, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10);
`
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UTC()
	p.UpdatedAt = p.CreatedAt
	_, err := r.db.ExecContext(ctx, q,
		p.ID, p.Title, p.Description, pq.Array(p.Tech),
		p.ImageURL, p.RepoURL, p.LiveURL, p.Featured, p.SortOrder, p.CreatedAt,
	)
	return p, err
}

// UpdateProject 覆寫整筆項目。
func (r *ContentRepo) UpdateProject(ctx context.Context, p content.Project) (content.Project, error) {
	const q = `
UPDATE projects
SET title = $2, description = $3, tech = $4, image_url = $5, repo_url = $6, live_url = $7,
    featured = $8, sort_order = $9, updated_at = $10
WHERE id = $1;
`
	p.UpdatedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx, q,
		p.ID, p.Title, p.Description, pq.Array(p.Tech),
		p.ImageURL, p.RepoURL, p.LiveURL, p.Featured, p.SortOrder, p.UpdatedAt,
	)
	if err != nil {
		return content.Project{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return content.Project{}, content.ErrNotFound
	}
	return p, nil
}

// DeleteProject 刪除項目。
func (r *ContentRepo) DeleteProject(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return content.ErrNotFound
	}
	return nil
}

// --- skills ---

// ListSkills 依 category、sort_order 取得全部技能。
func (r *ContentRepo) ListSkills(ctx context.Context) ([]content.Skill, error) {
	const q = `
SELECT id, name, category, level, sort_order
FROM skills
ORDER BY category, sort_order, name;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []content.Skill
	for rows.Next() {
		var s content.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Level, &s.SortOrder); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// CreateSkill 新增技能。
func (r *ContentRepo) CreateSkill(ctx context.Context, s content.Skill) (content.Skill, error) {
	const q = `
INSERT INTO skills (id, name, category, level, sort_order)
VALUES ($1, $2, $3, $4, $5);
`
	s.ID = uuid.NewString()
	_, err := r.db.ExecContext(ctx, q, s.ID, s.Name, s.Category, s.Level, s.SortOrder)
	return s, err
}

// UpdateSkill 覆寫整筆技能。
func (r *ContentRepo) UpdateSkill(ctx context.Context, s content.Skill) (content.Skill, error) {
	const q = `
UPDATE skills SET name = $2, category = $3, level = $4, sort_order = $5 WHERE id = $1;
`
	res, err := r.db.ExecContext(ctx, q, s.ID, s.Name, s.Category, s.Level, s.SortOrder)
	if err != nil {
		return content.Skill{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return content.Skill{}, content.ErrNotFound
	}
	return s, nil
}

// DeleteSkill 刪除技能。
func (r *ContentRepo) DeleteSkill(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM skills WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return content.ErrNotFound
	}
	return nil
}

// --- experiences ---

// ListExperiences 依 sort_order、起始日期遞減排列。
func (r *ContentRepo) ListExperiences(ctx context.Context) ([]content.Experience, error) {
	const q = `
SELECT id, role, company, location, start_date, end_date, summary, sort_order
FROM experiences
ORDER BY sort_order, start_date DESC;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []content.Experience
	for rows.Next() {
		var e content.Experience
		var end sql.NullTime
		if err := rows.Scan(&e.ID, &e.Role, &e.Company, &e.Location, &e.StartDate, &end, &e.Summary, &e.SortOrder); err != nil {
			return nil, err
		}
		if end.Valid {
			e.EndDate = &end.Time
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// CreateExperience 新增經歷。
func (r *ContentRepo) CreateExperience(ctx context.Context, e content.Experience) (content.Experience, error) {
	const q = `
INSERT INTO experiences (id, role, company, location, start_date, end_date, summary, sort_order)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
`
	e.ID = uuid.NewString()
	_, err := r.db.ExecContext(ctx, q, e.ID, e.Role, e.Company, e.Location, e.StartDate, nullTime(e.EndDate), e.Summary, e.SortOrder)
	return e, err
}

// UpdateExperience 覆寫整筆經歷。
func (r *ContentRepo) UpdateExperience(ctx context.Context, e content.Experience) (content.Experience, error) {
	const q = `
UPDATE experiences
SET role = $2, company = $3, location = $4, start_date = $5, end_date = $6, summary = $7, sort_order = $8
WHERE id = $1;
`
	res, err := r.db.ExecContext(ctx, q, e.ID, e.Role, e.Company, e.Location, e.StartDate, nullTime(e.EndDate), e.Summary, e.SortOrder)
	if err != nil {
		return content.Experience{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return content.Experience{}, content.ErrNotFound
	}
	return e, nil
}

// DeleteExperience 刪除經歷。
func (r *ContentRepo) DeleteExperience(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM experiences WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return content.ErrNotFound
	}
	return nil
}

// --- testimonials ---

// ListTestimonials 取得推薦語；approvedOnly 供公開端點使用。
func (r *ContentRepo) ListTestimonials(ctx context.Context, approvedOnly bool) ([]content.Testimonial, error) {
	const q = `
SELECT id, author, author_role, quote, avatar_url, approved, created_at
FROM testimonials
WHERE ($1::bool IS FALSE OR approved)
ORDER BY created_at DESC;
`
	rows, err := r.db.QueryContext(ctx, q, approvedOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []content.Testimonial
	for rows.Next() {
		var t content.Testimonial
		if err := rows.Scan(&t.ID, &t.Author, &t.AuthorRole, &t.Quote, &t.AvatarURL, &t.Approved, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// CreateTestimonial 新增推薦語，預設未核准。
func (r *ContentRepo) CreateTestimonial(ctx context.Context, t content.Testimonial) (content.Testimonial, error) {
	const q = `
INSERT INTO testimonials (id, author, author_role, quote, avatar_url, approved, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7);
`
	t.ID = uuid.NewString()
	t.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, q, t.ID, t.Author, t.AuthorRole, t.Quote, t.AvatarURL, t.Approved, t.CreatedAt)
	return t, err
}

// UpdateTestimonial 覆寫整筆推薦語（含核准狀態）。
func (r *ContentRepo) UpdateTestimonial(ctx context.Context, t content.Testimonial) (content.Testimonial, error) {
	const q = `
UPDATE testimonials
SET author = $2, author_role = $3, quote = $4, avatar_url = $5, approved = $6
WHERE id = $1;
`
	res, err := r.db.ExecContext(ctx, q, t.ID, t.Author, t.AuthorRole, t.Quote, t.AvatarURL, t.Approved)
	if err != nil {
		return content.Testimonial{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return content.Testimonial{}, content.ErrNotFound
	}
	return t, nil
}

// DeleteTestimonial 刪除推薦語。
func (r *ContentRepo) DeleteTestimonial(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM testimonials WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return content.ErrNotFound
	}
	return nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
