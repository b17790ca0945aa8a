package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	appAuth "github.com/abdhesh369/Portfolio-sub001/internal/application/auth"
)

func (s *Server) handleLogin(c *gin.Context) {
	var body struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid body", "error_code": errCodeBadRequest})
		return
	}
	if body.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "password is required", "error_code": errCodeBadRequest})
		return
	}

	res, err := s.loginUC.Execute(c.Request.Context(), body.Password)
	if err != nil {
		if errors.Is(err, appAuth.ErrInvalidCredentials) {
			s.logger.Warn().Str("ip", c.ClientIP()).Msg("login failed")
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid credentials", "error_code": errCodeInvalidCredentials})
			return
		}
		s.respondDomainError(c, err)
		return
	}

	s.logger.Info().Str("ip", c.ClientIP()).Msg("login success")
	s.setSessionCookie(c, res.Token, res.ExpiresAt)
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"token":      res.Token,
		"token_type": "Bearer",
		"expires_at": res.ExpiresAt.UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleAuthStatus(c *gin.Context) {
	id, ok := currentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "unauthorized", "error_code": errCodeUnauthorized})
		return
	}
	user := gin.H{
		"subject": id.Subject,
		"role":    string(id.Role),
		"method":  string(id.Method),
	}
	if !id.ExpiresAt.IsZero() {
		user["expires_at"] = id.ExpiresAt.UTC().Format(time.RFC3339)
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "authenticated": true, "user": user})
}

func (s *Server) handleLogout(c *gin.Context) {
	id, ok := currentIdentity(c)
	if ok {
		if err := s.logoutUC.Execute(c.Request.Context(), id); err != nil {
			s.logger.Warn().Err(err).Msg("logout revoke failed")
		}
	}
	s.setSessionCookie(c, "", time.Now().Add(-time.Hour))
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "logged out"})
}

func (s *Server) setSessionCookie(c *gin.Context, token string, expiry time.Time) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(
		sessionCookieName,
		token,
		int(time.Until(expiry).Seconds()),
		"/",
		"",
		s.cfg.IsProduction(), // Secure
		true,                 // HttpOnly
	)
}
