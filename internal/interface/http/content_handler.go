package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abdhesh369/Portfolio-sub001/internal/domain/content"
)

// --- projects ---

func (s *Server) handleListProjects(c *gin.Context) {
	featured := c.Query("featured") == "true"
	projects, err := s.repo.ListProjects(c.Request.Context(), featured)
	if err != nil {
		s.respondDomainError(c, err)
		return
	}
	if projects == nil {
		projects = []content.Project{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "projects": projects})
}

func (s *Server) handleGetProject(c *gin.Context) {
	p, err := s.repo.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "project": p})
}

func (s *Server) handleCreateProject(c *gin.Context) {
	var p content.Project
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid body", "error_code": errCodeBadRequest})
		return
	}
	if err := p.Validate(); err != nil {
		s.respondDomainError(c, err)
		return
	}
	created, err := s.repo.CreateProject(c.Request.Context(), p)
	if err != nil {
		s.respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "project": created})
}

func (s *Server) handleUpdateProject(c *gin.Context) {
	var p content.Project
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid body", "error_code": errCodeBadRequest})
		return
	}
	p.ID = c.Param("id")
	if err := p.Validate(); err != nil {
		s.respondDomainError(c, err)
		return
	}
	updated, err := s.repo.UpdateProject(c.Request.Context(), p)
	if err != nil {
		s.respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "project": updated})
}

func (s *Server) handleDeleteProject(c *gin.Context) {
	if err := s.repo.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		s.respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// --- skills ---

func (s *Server) handleListSkills(c *gin.Context) {
	skills, err := s.repo.ListSkills(c.Request.Context())
	if err != nil {
		s.respondDomainError(c, err)
		return
	}
	if skills == nil {
		skills = []content.Skill{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "skills": skills})
}

func (s *Server) handleCreateSkill(c *gin.Context) {
	var sk content.Skill
	if err := c.ShouldBindJSON(&sk); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid body", "error_code": errCodeBadRequest})
		return
	}
	if err := sk.Validate(); err != nil {
		s.respondDomainError(c, err)
		return
	}
	created, err := s.repo.CreateSkill(c.Request.Context(), sk)
	if err != nil {
		s.respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "skill": created})
}

func (s *Server) handleUpdateSkill(c *gin.Context) {
	var sk content.Skill
	if err := c.ShouldBindJSON(&sk); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid body", "error_code": errCodeBadRequest})
		return
	}
	sk.ID = c.Param("id")
	if err := sk.Validate(); err != nil {
		s.respondDomainError(c, err)
		return
	}
	updated, err := s.repo.UpdateSkill(c.Request.Context(), sk)
	if err != nil {
		s.respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "skill": updated})
}

func (s *Server) handleDeleteSkill(c *gin.Context) {
	if err := s.repo.DeleteSkill(c.Request.Context(), c.Param("id")); err != nil {
		s.respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// --- experiences ---

func (s *Server) handleListExperiences(c *gin.Context) {
	experiences, err := s.repo.ListExperiences(c.Request.Context())
	if err != nil {
		s.respondDomainError(c, err)
		return
	}
	if experiences == nil {
		experiences = []content.Experience{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "experiences": experiences})
}

func (s *Server) handleCreateExperience(c *gin.Context) {
	var e content.Experience
	if err := c.ShouldBindJSON(&e); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid body", "error_code": errCodeBadRequest})
		return
	}
	if err := e.Validate(); err != nil {
		s.respondDomainError(c, err)
		return
	}
	created, err := s.repo.CreateExperience(c.Request.Context(), e)
	if err != nil {
		s.respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "experience": created})
}

func (s *Server) handleUpdateExperience(c *gin.Context) {
	var e content.Experience
	if err := c.ShouldBindJSON(&e); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid body", "error_code": errCodeBadRequest})
		return
	}
	e.ID = c.Param("id")
	if err := e.Validate(); err != nil {
		s.respondDomainError(c, err)
		return
	}
	updated, err := s.repo.UpdateExperience(c.Request.Context(), e)
	if err != nil {
		s.respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "experience": updated})
}

func (s *Server) handleDeleteExperience(c *gin.Context) {
	if err := s.repo.DeleteExperience(c.Request.Context(), c.Param("id")); err != nil {
		s.respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// --- testimonials ---

func (s *Server) handleListTestimonials(c *gin.Context) {
	list, err := s.repo.ListTestimonials(c.Request.Context(), true)
	if err != nil {
		s.respondDomainError(c, err)
		return
	}
	if list == nil {
		list = []content.Testimonial{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "testimonials": list})
}

func (s *Server) handleListAllTestimonials(c *gin.Context) {
	list, err := s.repo.ListTestimonials(c.Request.Context(), false)
	if err != nil {
		s.respondDomainError(c, err)
		return
	}
	if list == nil {
		list = []content.Testimonial{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "testimonials": list})
}

// handleCreateTestimonial 為公開端點；投稿一律待審。
func (s *Server) handleCreateTestimonial(c *gin.Context) {
	var t content.Testimonial
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid body", "error_code": errCodeBadRequest})
		return
	}
	t.Approved = false
	if err := t.Validate(); err != nil {
		s.respondDomainError(c, err)
		return
	}
	created, err := s.repo.CreateTestimonial(c.Request.Context(), t)
	if err != nil {
		s.respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "testimonial": created})
}

func (s *Server) handleUpdateTestimonial(c *gin.Context) {
	var t content.Testimonial
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid body", "error_code": errCodeBadRequest})
		return
	}
	t.ID = c.Param("id")
	if err := t.Validate(); err != nil {
		s.respondDomainError(c, err)
		return
	}
	updated, err := s.repo.UpdateTestimonial(c.Request.Context(), t)
	if err != nil {
		s.respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "testimonial": updated})
}

func (s *Server) handleDeleteTestimonial(c *gin.Context) {
	if err := s.repo.DeleteTestimonial(c.Request.Context(), c.Param("id")); err != nil {
		s.respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
