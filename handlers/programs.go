package handlers

import (
	"net/http"

	"bizschool/middleware"
	"bizschool/services/records"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProgramHandler serves the workshop-records lookups.
type ProgramHandler struct {
	Svc    records.ProgramService
	Logger *zap.Logger
}

func NewProgramHandler(svc records.ProgramService, logger *zap.Logger) *ProgramHandler {
	return &ProgramHandler{Svc: svc, Logger: logger}
}

// ListProgramsHandler returns all learning programs in the request locale.
func (h *ProgramHandler) ListProgramsHandler(c *gin.Context) {
	locale := middleware.Locale(c)

	programs, err := h.Svc.ListPrograms(c.Request.Context(), locale)
	if err != nil {
		h.Logger.Error("failed to list programs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"programs": programs})
}

// GetProgramHandler returns one program by its code slug.
func (h *ProgramHandler) GetProgramHandler(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing slug"})
		return
	}
	locale := middleware.Locale(c)

	program, err := h.Svc.GetProgramBySlug(c.Request.Context(), slug, locale)
	if err != nil {
		h.Logger.Error("failed to fetch program", zap.String("slug", slug), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	if program == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Program not found"})
		return
	}
	c.JSON(http.StatusOK, program)
}
