package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Thecityismine/project-ganttflow/internal/export"
	"github.com/Thecityismine/project-ganttflow/internal/service"
)

type ExportHandler struct {
	projects *service.ProjectService
	exporter *export.Exporter
	logger   *zap.Logger
}

func NewExportHandler(projects *service.ProjectService, exporter *export.Exporter, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{
		projects: projects,
		exporter: exporter,
		logger:   logger,
	}
}

// PNG handles POST /projects/:id/export/png. Warm captures come straight from
// the cache; a cold one blocks on the headless render.
func (h *ExportHandler) PNG(c *gin.Context) {
	p, err := h.projects.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}

	data, err := h.exporter.ProjectPNG(c.Request.Context(), p.ID)
	if err != nil {
		h.logger.Error("PNG export failed", zap.String("project_id", p.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}

	h.download(c, export.Filename(p.Name, "png"), "image/png", data)
}

// PDF handles POST /projects/:id/export/pdf.
func (h *ExportHandler) PDF(c *gin.Context) {
	p, err := h.projects.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}

	data, err := h.exporter.ProjectPDF(c.Request.Context(), p.ID)
	if err != nil {
		h.logger.Error("PDF export failed", zap.String("project_id", p.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}

	h.download(c, export.Filename(p.Name, "pdf"), "application/pdf", data)
}

func (h *ExportHandler) download(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, contentType, data)
}
