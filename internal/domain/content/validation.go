package content

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError 以明確的結果型別攜帶欄位層級錯誤，
// 呼叫端以 errors.As 判斷並轉成 400 回應，不依賴 panic/recover。
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// validator 累積欄位錯誤，全部檢查完再回傳結果。
type validator struct {
	fields map[string]string
}

func (v *validator) require(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.add(field, "is required")
	}
}

func (v *validator) maxLen(field, value string, max int) {
	if len(value) > max {
		v.add(field, fmt.Sprintf("must be at most %d characters", max))
	}
}

func (v *validator) add(field, msg string) {
	if v.fields == nil {
		v.fields = make(map[string]string)
	}
	v.fields[field] = msg
}

func (v *validator) result() error {
	if len(v.fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: v.fields}
}
