package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abdhesh369/Portfolio-sub001/internal/domain/content"
)

// handleCreateMessage 為公開的聯絡表單端點。
func (s *Server) handleCreateMessage(c *gin.Context) {
	var m content.Message
	if err := c.ShouldBindJSON(&m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid body", "error_code": errCodeBadRequest})
		return
	}
	if err := m.Validate(); err != nil {
		s.respondDomainError(c, err)
		return
	}
	created, err := s.repo.CreateMessage(c.Request.Context(), m)
	if err != nil {
		s.respondDomainError(c, err)
		return
	}
	s.logger.Info().Str("message_id", created.ID).Msg("contact message received")

	// 通知為 best-effort，不影響訪客回應
	if s.notifier != nil {
		go func(m content.Message) {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := s.notifier.NotifyContactMessage(ctx, m); err != nil {
				s.logger.Warn().Err(err).Str("message_id", m.ID).Msg("contact notification failed")
			}
		}(created)
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": created})
}

func (s *Server) handleListMessages(c *gin.Context) {
	unread := c.Query("unread") == "true"
	messages, err := s.repo.ListMessages(c.Request.Context(), unread)
	if err != nil {
		s.respondDomainError(c, err)
		return
	}
	if messages == nil {
		messages = []content.Message{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "messages": messages})
}

func (s *Server) handleGetMessage(c *gin.Context) {
	m, err := s.repo.GetMessage(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": m})
}

func (s *Server) handleMarkMessageRead(c *gin.Context) {
	if err := s.repo.MarkMessageRead(c.Request.Context(), c.Param("id")); err != nil {
		s.respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handleDeleteMessage(c *gin.Context) {
	if err := s.repo.DeleteMessage(c.Request.Context(), c.Param("id")); err != nil {
		s.respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
