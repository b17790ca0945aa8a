package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abdhesh369/Portfolio-sub001/internal/domain/content"
)

// handleTrackPageView 寫入頁面瀏覽，為 best-effort：
// 寫入失敗只記 warning，照樣回 202，不影響前端。
func (s *Server) handleTrackPageView(c *gin.Context) {
	var v content.PageView
	if err := c.ShouldBindJSON(&v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid body", "error_code": errCodeBadRequest})
		return
	}
	if err := v.Validate(); err != nil {
		s.respondDomainError(c, err)
		return
	}
	if v.UserAgent == "" {
		v.UserAgent = c.Request.UserAgent()
	}
	if err := s.repo.RecordPageView(c.Request.Context(), v); err != nil {
		s.logger.Warn().Err(err).Str("path", v.Path).Msg("page view write failed")
	}
	c.JSON(http.StatusAccepted, gin.H{"success": true})
}

func (s *Server) handlePageViewStats(c *gin.Context) {
	days := parseIntDefault(c.Query("days"), 30)
	if days <= 0 || days > 365 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)

	stats, err := s.repo.PageViewStats(c.Request.Context(), since)
	if err != nil {
		s.respondDomainError(c, err)
		return
	}
	if stats == nil {
		stats = []content.PageViewStat{}
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"since":   since.UTC().Format(time.RFC3339),
		"stats":   stats,
	})
}
