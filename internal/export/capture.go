// Package export turns a project's chart page into downloadable PNG and PDF
// artifacts by driving a headless Chromium instance.
package export

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

const captureTimeout = 30 * time.Second

// readySelector matches the chart root once the page has finished laying out.
const readySelector = `[data-ready="true"]`

// CaptureOptions drives one headless screenshot of a chart page.
type CaptureOptions struct {
	// URL of the chart page, e.g. "http://127.0.0.1:8080/projects/42/chart".
	URL string

	// Width and Height are the CSS viewport in pixels.
	Width  int
	Height int

	// Scale is the device scale factor. Values above 1 sharpen text in the
	// rasterized output.
	Scale float64
}

// CapturePNG screenshots the chart page. It waits for the data-ready flag so
// the shot never races the layout, then grabs the full page.
func CapturePNG(parentCtx context.Context, opts CaptureOptions) ([]byte, error) {
	if opts.URL == "" {
		return nil, fmt.Errorf("capture: URL is required")
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}

	ctx, cancel := chromedp.NewContext(parentCtx)
	defer cancel()
	ctx, timeoutCancel := context.WithTimeout(ctx, captureTimeout)
	defer timeoutCancel()

	var png []byte
	tasks := chromedp.Tasks{
		chromedp.EmulateViewport(int64(opts.Width), int64(opts.Height),
			chromedp.EmulateScale(opts.Scale)),
		chromedp.Navigate(opts.URL),
		chromedp.WaitVisible(readySelector, chromedp.ByQuery),
		// Small extra delay to allow final paints.
		chromedp.Sleep(500 * time.Millisecond),
		chromedp.FullScreenshot(&png, 100),
	}
	if err := chromedp.Run(ctx, tasks); err != nil {
		return nil, fmt.Errorf("capture: chromedp run failed: %w", err)
	}
	return png, nil
}

// CapturePDF prints the chart page to a landscape US-letter PDF.
func CapturePDF(parentCtx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, fmt.Errorf("capture: URL is required")
	}

	ctx, cancel := chromedp.NewContext(parentCtx)
	defer cancel()
	ctx, timeoutCancel := context.WithTimeout(ctx, captureTimeout)
	defer timeoutCancel()

	var pdf []byte
	tasks := chromedp.Tasks{
		chromedp.Navigate(url),
		chromedp.WaitVisible(readySelector, chromedp.ByQuery),
		chromedp.Sleep(500 * time.Millisecond),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithLandscape(true).
				WithPaperWidth(11).
				WithPaperHeight(8.5).
				WithPrintBackground(true).
				WithMarginTop(0.25).
				WithMarginBottom(0.25).
				WithMarginLeft(0.25).
				WithMarginRight(0.25).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	}
	if err := chromedp.Run(ctx, tasks); err != nil {
		return nil, fmt.Errorf("capture: chromedp run failed: %w", err)
	}
	return pdf, nil
}
