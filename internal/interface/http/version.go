package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// handleVersionFallback 把舊版未加版本的 /api/* 路徑以 307 轉到
// /api/v1/*，保留原方法與 query string。/api/v1 下真正不存在的
// 路徑不再轉向，直接回 404。
func (s *Server) handleVersionFallback(c *gin.Context) {
	path := c.Request.URL.Path
	if strings.HasPrefix(path, "/api/") && !strings.HasPrefix(path, "/api/v1/") && path != "/api/v1" {
		target := "/api/v1" + strings.TrimPrefix(path, "/api")
		if raw := c.Request.URL.RawQuery; raw != "" {
			target += "?" + raw
		}
		c.Redirect(http.StatusTemporaryRedirect, target)
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "not found", "error_code": errCodeNotFound})
}
