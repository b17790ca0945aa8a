package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/abdhesh369/Portfolio-sub001/internal/domain/content"
)

// SEORepo 提供頁面 SEO 設定的資料存取；page 由唯一索引保證不重複。
type SEORepo struct {
	db *sql.DB
}

// NewSEORepo 建立 SEO 設定資料存取實例。
func NewSEORepo(db *sql.DB) *SEORepo {
	return &SEORepo{db: db}
}

// ListSEOSettings 取全部頁面設定。
func (r *SEORepo) ListSEOSettings(ctx context.Context) ([]content.SEOSetting, error) {
	const q = `
SELECT id, page, title, description, keywords, og_image_url, updated_at
FROM seo_settings
ORDER BY page;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []content.SEOSetting
	for rows.Next() {
		var s content.SEOSetting
		if err := rows.Scan(&s.ID, &s.Page, &s.Title, &s.Description, pq.Array(&s.Keywords), &s.OGImageURL, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetSEOSetting 以 page slug 取單頁設定。
func (r *SEORepo) GetSEOSetting(ctx context.Context, page string) (content.SEOSetting, error) {
	const q = `
SELECT id, page, title, description, keywords, og_image_url, updated_at
FROM seo_settings WHERE page = $1;
`
	var s content.SEOSetting
	err := r.db.QueryRowContext(ctx, q, page).Scan(&s.ID, &s.Page, &s.Title, &s.Description, pq.Array(&s.Keywords), &s.OGImageURL, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return content.SEOSetting{}, content.ErrNotFound
	}
	return s, err
}

// CreateSEOSetting 新增頁面設定；page 重複時回傳 ErrSlugTaken。
func (r *SEORepo) CreateSEOSetting(ctx context.Context, s content.SEOSetting) (content.SEOSetting, error) {
	const q = `
INSERT INTO seo_settings (id, page, title, description, keywords, og_image_url, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7);
`
	s.ID = uuid.NewString()
	s.UpdatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, q, s.ID, s.Page, s.Title, s.Description, pq.Array(s.Keywords), s.OGImageURL, s.UpdatedAt)
	if isUniqueViolation(err) {
		return content.SEOSetting{}, content.ErrSlugTaken
	}
	return s, err
}

// UpdateSEOSetting 以 page slug 覆寫設定。
func (r *SEORepo) UpdateSEOSetting(ctx context.Context, s content.SEOSetting) (content.SEOSetting, error) {
	const q = `
UPDATE seo_settings
SET title = $2, description = $3, keywords = $4, og_image_url = $5, updated_at = $6
WHERE page = $1;
`
	s.UpdatedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx, q, s.Page, s.Title, s.Description, pq.Array(s.Keywords), s.OGImageURL, s.UpdatedAt)
	if err != nil {
		return content.SEOSetting{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return content.SEOSetting{}, content.ErrNotFound
	}
	return s, nil
}

// DeleteSEOSetting 以 page slug 刪除設定。
func (r *SEORepo) DeleteSEOSetting(ctx context.Context, page string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM seo_settings WHERE page = $1;`, page)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return content.ErrNotFound
	}
	return nil
}
