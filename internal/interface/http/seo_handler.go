package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abdhesh369/Portfolio-sub001/internal/domain/content"
)

func (s *Server) handleListSEO(c *gin.Context) {
	settings, err := s.repo.ListSEOSettings(c.Request.Context())
	if err != nil {
		s.respondDomainError(c, err)
		return
	}
	if settings == nil {
		settings = []content.SEOSetting{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "settings": settings})
}

func (s *Server) handleGetSEO(c *gin.Context) {
	setting, err := s.repo.GetSEOSetting(c.Request.Context(), c.Param("page"))
	if err != nil {
		s.respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "setting": setting})
}

func (s *Server) handleCreateSEO(c *gin.Context) {
	var setting content.SEOSetting
	if err := c.ShouldBindJSON(&setting); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid body", "error_code": errCodeBadRequest})
		return
	}
	if err := setting.Validate(); err != nil {
		s.respondDomainError(c, err)
		return
	}
	created, err := s.repo.CreateSEOSetting(c.Request.Context(), setting)
	if err != nil {
		s.respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "setting": created})
}

func (s *Server) handleUpdateSEO(c *gin.Context) {
	var setting content.SEOSetting
	if err := c.ShouldBindJSON(&setting); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid body", "error_code": errCodeBadRequest})
		return
	}
	setting.Page = c.Param("page")
	if err := setting.Validate(); err != nil {
		s.respondDomainError(c, err)
		return
	}
	updated, err := s.repo.UpdateSEOSetting(c.Request.Context(), setting)
	if err != nil {
		s.respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "setting": updated})
}

func (s *Server) handleDeleteSEO(c *gin.Context) {
	if err := s.repo.DeleteSEOSetting(c.Request.Context(), c.Param("page")); err != nil {
		s.respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
