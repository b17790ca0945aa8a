package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (s *Server) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "pong",
		"timestamp": time.Now().Unix(),
	})
}

// handleHealth 回報服務與資料庫狀態；記憶體模式視為健康。
// 資料庫失聯時回 503，錯誤細節僅在非 production 揭露。
func (s *Server) handleHealth(c *gin.Context) {
	status := http.StatusOK
	dbStatus := "memory"
	var detail string

	if s.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := s.db.PingContext(ctx); err != nil {
			status = http.StatusServiceUnavailable
			dbStatus = "unavailable"
			detail = err.Error()
		} else {
			dbStatus = "ok"
		}
	}

	overall := "healthy"
	if status != http.StatusOK {
		overall = "degraded"
	}
	resp := gin.H{
		"success":     status == http.StatusOK,
		"status":      overall,
		"database":    dbStatus,
		"environment": s.cfg.HTTP.Env,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	}
	if detail != "" && !s.cfg.IsProduction() {
		resp["detail"] = detail
	}
	c.JSON(status, resp)
}
