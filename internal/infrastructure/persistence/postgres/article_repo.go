package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/abdhesh369/Portfolio-sub001/internal/domain/content"
)

// ArticleRepo 提供文章資料存取；slug 由資料庫唯一索引保證不重複。
type ArticleRepo struct {
	db *sql.DB
}

// NewArticleRepo 建立文章資料存取實例。
func NewArticleRepo(db *sql.DB) *ArticleRepo {
	return &ArticleRepo{db: db}
}

const articleColumns = `id, title, slug, excerpt, body, cover_url, published, published_at, created_at, updated_at`

func scanArticle(row interface{ Scan(...any) error }) (content.Article, error) {
	var a content.Article
	var publishedAt sql.NullTime
	err := row.Scan(
		&a.ID, &a.Title, &a.Slug, &a.Excerpt, &a.Body, &a.CoverURL,
		&a.Published, &publishedAt, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return content.Article{}, err
	}
	if publishedAt.Valid {
		a.PublishedAt = &publishedAt.Time
	}
	return a, nil
}

// ListArticles 取文章列表；publishedOnly 供公開端點使用。
func (r *ArticleRepo) ListArticles(ctx context.Context, publishedOnly bool) ([]content.Article, error) {
	const q = `
SELECT ` + articleColumns + `
FROM articles
WHERE ($1::bool IS FALSE OR published)
ORDER BY created_at DESC;
`
	rows, err := r.db.QueryContext(ctx, q, publishedOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []content.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// GetArticleBySlug 以 slug 取單篇文章。
func (r *ArticleRepo) GetArticleBySlug(ctx context.Context, slug string) (content.Article, error) {
	const q = `SELECT ` + articleColumns + ` FROM articles WHERE slug = $1;`
	a, err := scanArticle(r.db.QueryRowContext(ctx, q, slug))
	if errors.Is(err, sql.ErrNoRows) {
		return content.Article{}, content.ErrNotFound
	}
	return a, err
}

// CreateArticle 新增文章；slug 重複時回傳 ErrSlugTaken。
func (r *ArticleRepo) CreateArticle(ctx context.Context, a content.Article) (content.Article, error) {
	const q = `
INSERT INTO articles (id, title, slug, excerpt, body, cover_url, published, published_at, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9);
`
	a.ID = uuid.NewString()
	a.CreatedAt = time.Now().UTC()
	a.UpdatedAt = a.CreatedAt
	if a.Published && a.PublishedAt == nil {
		a.PublishedAt = &a.CreatedAt
	}
	_, err := r.db.ExecContext(ctx, q,
		a.ID, a.Title, a.Slug, a.Excerpt, a.Body, a.CoverURL,
		a.Published, nullTime(a.PublishedAt), a.CreatedAt,
	)
	if isUniqueViolation(err) {
		return content.Article{}, content.ErrSlugTaken
	}
	return a, err
}

// UpdateArticle 覆寫整篇文章；改到既有 slug 時回傳 ErrSlugTaken。
func (r *ArticleRepo) UpdateArticle(ctx context.Context, a content.Article) (content.Article, error) {
	const q = `
UPDATE articles
SET title = $2, slug = $3, excerpt = $4, body = $5, cover_url = $6,
    published = $7, published_at = $8, updated_at = $9
WHERE id = $1;
`
	a.UpdatedAt = time.Now().UTC()
	if a.Published && a.PublishedAt == nil {
		a.PublishedAt = &a.UpdatedAt
	}
	res, err := r.db.ExecContext(ctx, q,
		a.ID, a.Title, a.Slug, a.Excerpt, a.Body, a.CoverURL,
		a.Published, nullTime(a.PublishedAt), a.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return content.Article{}, content.ErrSlugTaken
	}
	if err != nil {
		return content.Article{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return content.Article{}, content.ErrNotFound
	}
	return a, nil
}

// DeleteArticle 刪除文章。
func (r *ArticleRepo) DeleteArticle(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM articles WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return content.ErrNotFound
	}
	return nil
}
