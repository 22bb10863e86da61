package export

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Thecityismine/project-ganttflow/pkg/metrics"
)

// PNG capture viewport, derived from the canvas inner box and scale factor.
var (
	pngScale          = float64(PNGScale)
	pngViewportWidth  = int(float64(PNGCanvasWidth-2*PNGPadding) / pngScale)
	pngViewportHeight = int(float64(PNGCanvasHeight-2*PNGPadding) / pngScale)
)

// PNGCache stores finished PNG exports keyed by project id.
type PNGCache interface {
	Get(ctx context.Context, projectID string) ([]byte, bool)
	Set(ctx context.Context, projectID string, data []byte) error
}

// Exporter produces downloadable chart artifacts. PNG exports are served from
// the cache when a prior capture is still warm; PDFs are printed fresh every
// time.
type Exporter struct {
	baseURL string
	cache   PNGCache
	logger  *zap.Logger
}

func NewExporter(baseURL string, cache PNGCache, logger *zap.Logger) *Exporter {
	return &Exporter{
		baseURL: strings.TrimRight(baseURL, "/"),
		cache:   cache,
		logger:  logger,
	}
}

func (e *Exporter) chartURL(projectID string) string {
	return fmt.Sprintf("%s/projects/%s/chart", e.baseURL, projectID)
}

// ProjectPNG returns the letterboxed PNG for a project, capturing it if the
// cache has no warm copy.
func (e *Exporter) ProjectPNG(ctx context.Context, projectID string) ([]byte, error) {
	if e.cache != nil {
		if data, ok := e.cache.Get(ctx, projectID); ok {
			return data, nil
		}
	}

	start := time.Now()
	data, err := e.renderPNG(ctx, projectID)
	metrics.RecordExportDuration("png", exportStatus(err), time.Since(start))
	if err != nil {
		return nil, err
	}

	if e.cache != nil {
		if err := e.cache.Set(ctx, projectID, data); err != nil {
			e.logger.Warn("Failed to cache export", zap.String("project_id", projectID), zap.Error(err))
		}
	}
	return data, nil
}

// WarmPNG captures a fresh PNG and stores it, bypassing any cached copy. The
// event worker calls this after every save so downloads stay instant.
func (e *Exporter) WarmPNG(ctx context.Context, projectID string) error {
	start := time.Now()
	data, err := e.renderPNG(ctx, projectID)
	metrics.RecordExportDuration("png", exportStatus(err), time.Since(start))
	if err != nil {
		return err
	}
	if e.cache != nil {
		if err := e.cache.Set(ctx, projectID, data); err != nil {
			e.logger.Warn("Failed to cache export", zap.String("project_id", projectID), zap.Error(err))
		}
	}
	return nil
}

func (e *Exporter) renderPNG(ctx context.Context, projectID string) ([]byte, error) {
	captured, err := CapturePNG(ctx, CaptureOptions{
		URL:    e.chartURL(projectID),
		Width:  pngViewportWidth,
		Height: pngViewportHeight,
		Scale:  PNGScale,
	})
	if err != nil {
		return nil, err
	}
	return LetterboxPNG(captured)
}

// ProjectPDF prints the chart page to a landscape letter PDF.
func (e *Exporter) ProjectPDF(ctx context.Context, projectID string) ([]byte, error) {
	start := time.Now()
	data, err := CapturePDF(ctx, e.chartURL(projectID))
	metrics.RecordExportDuration("pdf", exportStatus(err), time.Since(start))
	if err != nil {
		return nil, err
	}
	return data, nil
}

func exportStatus(err error) string {
	if err != nil {
		return "failed"
	}
	return "success"
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Filename builds the download name for an export, e.g.
// "Riverside-Clinic-schedule.png".
func Filename(projectName, ext string) string {
	name := strings.TrimSpace(projectName)
	if name == "" {
		name = "project"
	}
	name = unsafeFilenameChars.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-")
	return fmt.Sprintf("%s-schedule.%s", name, ext)
}
