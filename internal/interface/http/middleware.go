package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authDomain "github.com/abdhesh369/Portfolio-sub001/internal/domain/auth"
	"github.com/abdhesh369/Portfolio-sub001/internal/infrastructure/ratelimit"
)

const identityKey = "identity"

// requireAuth 依序嘗試三種憑證通道：Authorization Bearer、
// session cookie、X-API-Key。token 先查撤銷清單再驗簽章，
// 讓已登出的 token 能得到明確的錯誤碼。
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := s.authenticate(c)
		if err != nil {
			code := errCodeUnauthorized
			msg := "unauthorized"
			switch err {
			case authDomain.ErrTokenRevoked:
				code = errCodeTokenRevoked
				msg = "token has been revoked"
			case authDomain.ErrTokenInvalid:
				code = errCodeTokenInvalid
				msg = "token invalid or expired"
			}
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": msg, "error_code": code})
			c.Abort()
			return
		}
		c.Set(identityKey, id)
		c.Next()
	}
}

func (s *Server) authenticate(c *gin.Context) (authDomain.Identity, error) {
	token := parseBearer(c.GetHeader("Authorization"))
	method := authDomain.MethodBearer
	if token == "" {
		if t, err := c.Cookie(sessionCookieName); err == nil && t != "" {
			token = t
			method = authDomain.MethodCookie
		}
	}

	if token != "" {
		revoked, err := s.revoked.IsRevoked(c.Request.Context(), token)
		if err != nil {
			s.logger.Warn().Err(err).Msg("revocation check failed")
			return authDomain.Identity{}, authDomain.ErrTokenInvalid
		}
		if revoked {
			return authDomain.Identity{}, authDomain.ErrTokenRevoked
		}
		claims, err := s.tokenSvc.ParseToken(token)
		if err != nil {
			return authDomain.Identity{}, err
		}
		return authDomain.Identity{
			Subject:   claims.Subject,
			Role:      authDomain.Role(claims.Role),
			Method:    method,
			Token:     token,
			ExpiresAt: claims.ExpiresAt.Time,
		}, nil
	}

	if key := c.GetHeader("X-API-Key"); key != "" {
		if s.verifier.VerifyAPIKey(key) {
			return authDomain.Identity{
				Subject: authDomain.AdminSubject,
				Role:    authDomain.RoleAdmin,
				Method:  authDomain.MethodAPIKey,
			}, nil
		}
		return authDomain.Identity{}, authDomain.ErrTokenInvalid
	}

	return authDomain.Identity{}, authDomain.ErrNoCredential
}

// rateLimit 以來源 IP 套用固定視窗限流並輸出標準限流標頭。
// undoOnSuccess 讓成功的請求不佔額度（登入端點只計失敗次數）。
// 限流器故障時放行，不讓限流成為服務中斷點。
func (s *Server) rateLimit(l ratelimit.Limiter, undoOnSuccess bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		res, err := l.Take(c.Request.Context(), key)
		if err != nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("rate limiter unavailable, allowing request")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(res.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

		if !res.Allowed {
			retryAfter := int(time.Until(res.ResetAt).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"success":    false,
				"error":      "too many requests, try again later",
				"error_code": errCodeRateLimited,
			})
			c.Abort()
			return
		}

		c.Next()

		if undoOnSuccess && c.Writer.Status() < http.StatusBadRequest {
			if err := l.Undo(c.Request.Context(), key); err != nil {
				s.logger.Warn().Err(err).Str("key", key).Msg("rate limit undo failed")
			}
		}
	}
}

// cors 僅允許設定的前端來源；未設定時允許任意來源（開發模式）。
func (s *Server) cors() gin.HandlerFunc {
	origin := s.cfg.HTTP.FrontendOrigin
	return func(c *gin.Context) {
		reqOrigin := c.GetHeader("Origin")
		switch {
		case origin == "":
			c.Header("Access-Control-Allow-Origin", "*")
		case reqOrigin == origin:
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Vary", "Origin")
		}
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-API-Key, X-Requested-With")
		c.Header("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// requestLogger 為每個請求產生 request id 並記錄結構化存取日誌。
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header("X-Request-ID", requestID)

		c.Next()

		s.logger.Info().
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("ip", c.ClientIP()).
			Msg("request")
	}
}
