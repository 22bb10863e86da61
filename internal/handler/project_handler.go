package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Thecityismine/project-ganttflow/internal/model"
	"github.com/Thecityismine/project-ganttflow/internal/render"
	"github.com/Thecityismine/project-ganttflow/internal/service"
	"github.com/Thecityismine/project-ganttflow/internal/timeline"
)

type ProjectHandler struct {
	projects *service.ProjectService
	autosave *service.AutosaveScheduler
	renderer *render.Renderer
	minCols  int
	logger   *zap.Logger
}

func NewProjectHandler(projects *service.ProjectService, autosave *service.AutosaveScheduler, renderer *render.Renderer, minCols int, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{
		projects: projects,
		autosave: autosave,
		renderer: renderer,
		minCols:  minCols,
		logger:   logger,
	}
}

// List handles GET /projects. An empty store comes back with one seeded
// starter schedule.
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projects.ListOrSeed(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list projects", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load projects"})
		return
	}
	c.JSON(http.StatusOK, projects)
}

// Create handles POST /projects.
func (h *ProjectHandler) Create(c *gin.Context) {
	p, err := h.projects.Create(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to create project", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create project"})
		return
	}
	c.JSON(http.StatusCreated, p)
}

// Get handles GET /projects/:id.
func (h *ProjectHandler) Get(c *gin.Context) {
	p, err := h.projects.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// Update handles PUT /projects/:id. The edit is accepted immediately and
// persisted through the debounced autosave, so a burst of edits costs one
// write.
func (h *ProjectHandler) Update(c *gin.Context) {
	var p model.Project
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project document"})
		return
	}
	p.ID = c.Param("id")

	h.autosave.Schedule(p)
	c.JSON(http.StatusAccepted, gin.H{"status": "queued"})
}

// Delete handles DELETE /projects/:id.
func (h *ProjectHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	h.autosave.Cancel(id)
	h.projects.Delete(c.Request.Context(), id)
	c.Status(http.StatusNoContent)
}

// Duplicate handles POST /projects/:id/duplicate.
func (h *ProjectHandler) Duplicate(c *gin.Context) {
	copy, err := h.projects.Duplicate(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	c.JSON(http.StatusCreated, copy)
}

// RebaseStartDate handles PUT /projects/:id/start-date. The whole schedule
// shifts to follow the new start.
func (h *ProjectHandler) RebaseStartDate(c *gin.Context) {
	var req struct {
		StartDate string `json:"startDate" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startDate is required"})
		return
	}

	p, err := h.projects.RebaseStartDate(c.Request.Context(), c.Param("id"), req.StartDate)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// ChartJSON handles GET /projects/:id/chart.json, the laid-out grid as data.
func (h *ProjectHandler) ChartJSON(c *gin.Context) {
	p, err := h.projects.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	c.JSON(http.StatusOK, timeline.BuildChart(p, h.minCols, time.Now()))
}

// ChartPage handles GET /projects/:id/chart. This is the page the headless
// browser captures, so it stays unauthenticated and self-contained.
func (h *ProjectHandler) ChartPage(c *gin.Context) {
	p, err := h.projects.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "project not found")
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := h.renderer.ChartHTML(c.Writer, p, time.Now()); err != nil {
		h.logger.Error("Failed to render chart page",
			zap.String("project_id", p.ID),
			zap.Error(err),
		)
	}
}
