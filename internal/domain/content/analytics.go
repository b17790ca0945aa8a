package content

import "time"

// PageView 為一次頁面瀏覽紀錄，寫入為 best-effort。
type PageView struct {
	ID        string    `json:"id"`
	Path      string    `json:"path"`
	Referrer  string    `json:"referrer,omitempty"`
	UserAgent string    `json:"user_agent,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// PageViewStat 為單一路徑的瀏覽統計。
type PageViewStat struct {
	Path  string `json:"path"`
	Count int64  `json:"count"`
}

func (p PageView) Validate() error {
	var v validator
	v.require("path", p.Path)
	v.maxLen("path", p.Path, 500)
	return v.result()
}
