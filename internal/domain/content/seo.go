package content

import "time"

// SEOSetting 為單一頁面的 SEO 中繼資料；page slug 唯一。
type SEOSetting struct {
	ID          string    `json:"id"`
	Page        string    `json:"page"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Keywords    []string  `json:"keywords,omitempty"`
	OGImageURL  string    `json:"og_image_url,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (s SEOSetting) Validate() error {
	var v validator
	v.require("page", s.Page)
	v.require("title", s.Title)
	v.maxLen("title", s.Title, 70)
	v.maxLen("description", s.Description, 200)
	if s.Page != "" && !slugPattern.MatchString(s.Page) {
		v.add("page", "must be lowercase letters, digits and hyphens")
	}
	return v.result()
}
