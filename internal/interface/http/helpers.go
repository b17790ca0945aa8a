package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	authDomain "github.com/abdhesh369/Portfolio-sub001/internal/domain/auth"
	"github.com/abdhesh369/Portfolio-sub001/internal/domain/content"
)

func parseBearer(h string) string {
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

func parseIntDefault(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

func currentIdentity(c *gin.Context) (authDomain.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return authDomain.Identity{}, false
	}
	id, ok := v.(authDomain.Identity)
	return id, ok
}

// respondDomainError 把領域錯誤轉成對應的 HTTP 回應；
// 未知錯誤記錄後回 500，不外洩內部細節。
func (s *Server) respondDomainError(c *gin.Context, err error) {
	var verr *content.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{
			"success":    false,
			"error":      "validation failed",
			"error_code": errCodeValidation,
			"fields":     verr.Fields,
		})
	case errors.Is(err, content.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "not found", "error_code": errCodeNotFound})
	case errors.Is(err, content.ErrSlugTaken):
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": "slug already in use", "error_code": errCodeConflict})
	default:
		s.logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal error", "error_code": errCodeInternal})
	}
}
