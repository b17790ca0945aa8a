package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/abdhesh369/Portfolio-sub001/internal/domain/content"
)

// AnalyticsRepo 提供頁面瀏覽紀錄的寫入與彙總。
type AnalyticsRepo struct {
	db *sql.DB
}

// NewAnalyticsRepo 建立分析資料存取實例。
func NewAnalyticsRepo(db *sql.DB) *AnalyticsRepo {
	return &AnalyticsRepo{db: db}
}

// RecordPageView 寫入一次頁面瀏覽。
func (r *AnalyticsRepo) RecordPageView(ctx context.Context, v content.PageView) error {
	const q = `
INSERT INTO page_views (id, path, referrer, user_agent, created_at)
VALUES ($1, $2, $3, $4, $5);
`
	_, err := r.db.ExecContext(ctx, q, uuid.NewString(), v.Path, v.Referrer, v.UserAgent, time.Now().UTC())
	return err
}

// PageViewStats 彙總各路徑自 since 起的瀏覽次數，遞減排列。
func (r *AnalyticsRepo) PageViewStats(ctx context.Context, since time.Time) ([]content.PageViewStat, error) {
	const q = `
SELECT path, count(*)
FROM page_views
WHERE created_at >= $1
GROUP BY path
ORDER BY count(*) DESC, path;
`
	rows, err := r.db.QueryContext(ctx, q, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []content.PageViewStat
	for rows.Next() {
		var s content.PageViewStat
		if err := rows.Scan(&s.Path, &s.Count); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
