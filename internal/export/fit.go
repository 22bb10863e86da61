package export

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	xdraw "golang.org/x/image/draw"
)

// Canvas geometry for PNG downloads. The captured chart is letterboxed onto a
// fixed-size white canvas so every export has the same dimensions regardless
// of schedule length.
const (
	PNGCanvasWidth  = 3200
	PNGCanvasHeight = 2000
	PNGPadding      = 88
	PNGScale        = 2.2
)

// FitToCanvas centers src on a white canvasW x canvasH canvas, scaled down or
// up to fill the padded inner box while preserving aspect ratio.
func FitToCanvas(src image.Image, canvasW, canvasH, pad int) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, canvasW, canvasH))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	innerW := canvasW - 2*pad
	innerH := canvasH - 2*pad
	srcW := src.Bounds().Dx()
	srcH := src.Bounds().Dy()
	if srcW == 0 || srcH == 0 || innerW <= 0 || innerH <= 0 {
		return canvas
	}

	ratio := float64(innerW) / float64(srcW)
	if r := float64(innerH) / float64(srcH); r < ratio {
		ratio = r
	}
	dstW := int(float64(srcW) * ratio)
	dstH := int(float64(srcH) * ratio)

	x0 := (canvasW - dstW) / 2
	y0 := (canvasH - dstH) / 2
	dst := image.Rect(x0, y0, x0+dstW, y0+dstH)
	xdraw.CatmullRom.Scale(canvas, dst, src, src.Bounds(), xdraw.Over, nil)
	return canvas
}

// LetterboxPNG decodes a captured screenshot, letterboxes it onto the
// standard export canvas and re-encodes it.
func LetterboxPNG(captured []byte) ([]byte, error) {
	src, err := png.Decode(bytes.NewReader(captured))
	if err != nil {
		return nil, fmt.Errorf("export: failed to decode capture: %w", err)
	}

	canvas := FitToCanvas(src, PNGCanvasWidth, PNGCanvasHeight, PNGPadding)

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("export: failed to encode canvas: %w", err)
	}
	return buf.Bytes(), nil
}
