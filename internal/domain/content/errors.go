package content

import "errors"

var (
	// ErrNotFound 表示查無此資源。
	ErrNotFound = errors.New("content: not found")
	// ErrSlugTaken 表示 slug 或 page 名稱已被占用。
	ErrSlugTaken = errors.New("content: slug already taken")
)
