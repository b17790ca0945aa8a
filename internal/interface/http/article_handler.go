package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abdhesh369/Portfolio-sub001/internal/domain/content"
)

func (s *Server) handleListArticles(c *gin.Context) {
	articles, err := s.repo.ListArticles(c.Request.Context(), true)
	if err != nil {
		s.respondDomainError(c, err)
		return
	}
	if articles == nil {
		articles = []content.Article{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "articles": articles})
}

func (s *Server) handleListAllArticles(c *gin.Context) {
	articles, err := s.repo.ListArticles(c.Request.Context(), false)
	if err != nil {
		s.respondDomainError(c, err)
		return
	}
	if articles == nil {
		articles = []content.Article{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "articles": articles})
}

// handleGetArticle 公開端點只看得到已發布文章；草稿視同不存在。
func (s *Server) handleGetArticle(c *gin.Context) {
	a, err := s.repo.GetArticleBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		s.respondDomainError(c, err)
		return
	}
	if !a.Published {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "not found", "error_code": errCodeNotFound})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "article": a})
}

func (s *Server) handleCreateArticle(c *gin.Context) {
	var a content.Article
	if err := c.ShouldBindJSON(&a); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid body", "error_code": errCodeBadRequest})
		return
	}
	if err := a.Validate(); err != nil {
		s.respondDomainError(c, err)
		return
	}
	created, err := s.repo.CreateArticle(c.Request.Context(), a)
	if err != nil {
		s.respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "article": created})
}

func (s *Server) handleUpdateArticle(c *gin.Context) {
	var a content.Article
	if err := c.ShouldBindJSON(&a); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid body", "error_code": errCodeBadRequest})
		return
	}
	a.ID = c.Param("id")
	if err := a.Validate(); err != nil {
		s.respondDomainError(c, err)
		return
	}
	updated, err := s.repo.UpdateArticle(c.Request.Context(), a)
	if err != nil {
		s.respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "article": updated})
}

func (s *Server) handleDeleteArticle(c *gin.Context) {
	if err := s.repo.DeleteArticle(c.Request.Context(), c.Param("id")); err != nil {
		s.respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
