package export

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidPNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestFitToCanvasWideSource(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1000, 100))
	canvas := FitToCanvas(src, 500, 300, 50)

	assert.Equal(t, 500, canvas.Bounds().Dx())
	assert.Equal(t, 300, canvas.Bounds().Dy())

	// Width-bound: source scales to 400x40 centered at (50,130).
	_, _, _, a := canvas.At(50, 130).RGBA()
	assert.NotZero(t, a)

	// Padding stays white.
	r, g, b, _ := canvas.At(10, 10).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), g)
	assert.Equal(t, uint32(0xffff), b)
}

func TestFitToCanvasTallSource(t *testing.T) {
	black := image.NewUniform(color.Black)
	src := image.NewRGBA(image.Rect(0, 0, 100, 1000))
	for y := 0; y < 1000; y++ {
		for x := 0; x < 100; x++ {
			src.Set(x, y, black)
		}
	}
	canvas := FitToCanvas(src, 400, 400, 40)

	// Height-bound: source scales to 32x320 centered horizontally.
	r, _, _, _ := canvas.At(200, 200).RGBA()
	assert.Zero(t, r)

	// Left of the scaled strip remains white.
	r, _, _, _ = canvas.At(100, 200).RGBA()
	assert.Equal(t, uint32(0xffff), r)
}

func TestFitToCanvasEmptySource(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 0, 0))
	canvas := FitToCanvas(src, 200, 100, 10)

	assert.Equal(t, 200, canvas.Bounds().Dx())
	r, _, _, _ := canvas.At(100, 50).RGBA()
	assert.Equal(t, uint32(0xffff), r)
}

func TestLetterboxPNGDimensions(t *testing.T) {
	data, err := LetterboxPNG(solidPNG(t, 800, 500, color.RGBA{R: 0x3b, G: 0x6f, B: 0xe0, A: 0xff}))
	require.NoError(t, err)

	out, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, PNGCanvasWidth, out.Bounds().Dx())
	assert.Equal(t, PNGCanvasHeight, out.Bounds().Dy())
}

func TestLetterboxPNGRejectsGarbage(t *testing.T) {
	_, err := LetterboxPNG([]byte("not a png"))
	assert.Error(t, err)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "New-Project-schedule.png", Filename("New Project", "png"))
	assert.Equal(t, "Riverside-Clinic-schedule.pdf", Filename("Riverside / Clinic", "pdf"))
	assert.Equal(t, "project-schedule.png", Filename("   ", "png"))
}
