package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestFitWithin(t *testing.T) {
	cases := []struct {
		size  image.Point
		limit int
		w, h  int
	}{
		{image.Pt(100, 100), 800, 800, 800},
		{image.Pt(400, 200), 800, 800, 400},
		{image.Pt(200, 400), 800, 400, 800},
		{image.Pt(3000, 1), 800, 800, 1},
	}
	for _, tc := range cases {
		w, h := fitWithin(tc.size, tc.limit)
		assert.Equal(t, tc.w, w, "width for %v", tc.size)
		assert.Equal(t, tc.h, h, "height for %v", tc.size)
	}
}

func TestComparisonRenderer_Render(t *testing.T) {
	r := NewComparisonRenderer(0.09)
	r.PanelSize = 100

	t.Run("two panels side by side", func(t *testing.T) {
		red := color.RGBA{255, 0, 0, 255}
		blue := color.RGBA{0, 0, 255, 255}

		out, err := r.Render(solid(50, 50, red), solid(50, 50, blue), "cat")
		require.NoError(t, err)

		b := out.Bounds()
		assert.GreaterOrEqual(t, b.Dx(), 2*100+3*margin)

		// panels sit on the bottom edge, left then right
		y := b.Max.Y - margin - 50
		var sawRed, sawBlue bool
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.RGBAModel.Convert(out.At(x, y)).(color.RGBA)
			switch {
			case c.R > 200 && c.G < 50 && c.B < 50:
				sawRed = true
				assert.False(t, sawBlue, "red panel should be left of blue panel")
			case c.B > 200 && c.R < 50 && c.G < 50:
				sawBlue = true
			}
		}
		assert.True(t, sawRed)
		assert.True(t, sawBlue)

		// the corners are background
		assert.Equal(t, color.RGBA{255, 255, 255, 255}, color.RGBAModel.Convert(out.At(0, 0)))
	})

	t.Run("title is drawn", func(t *testing.T) {
		out, err := r.Render(solid(10, 10, color.White), solid(10, 10, color.White), "cat")
		require.NoError(t, err)

		var ink int
		for y := 0; y < margin+13*titleScale; y++ {
			for x := 0; x < out.Bounds().Dx(); x++ {
				if c := color.RGBAModel.Convert(out.At(x, y)).(color.RGBA); c.R < 128 {
					ink++
				}
			}
		}
		assert.Greater(t, ink, 0)
	})

	t.Run("transparent pixels land on the background", func(t *testing.T) {
		clear := image.NewNRGBA(image.Rect(0, 0, 20, 20))
		out, err := r.Render(clear, clear, "ghost")
		require.NoError(t, err)

		b := out.Bounds()
		leftCentre := (b.Dx()-(2*100+margin))/2 + 50
		c := color.RGBAModel.Convert(out.At(leftCentre, b.Max.Y-margin-50))
		assert.Equal(t, color.RGBA{255, 255, 255, 255}, c)
	})

	t.Run("mismatched sizes", func(t *testing.T) {
		_, err := r.Render(solid(10, 10, color.Black), solid(10, 11, color.Black), "cat")
		assert.ErrorIs(t, err, ErrMismatchedSize)
	})

	t.Run("missing image", func(t *testing.T) {
		_, err := r.Render(nil, solid(10, 10, color.Black), "cat")
		assert.Error(t, err)
	})

	t.Run("noisy title mentions the variance", func(t *testing.T) {
		assert.Equal(t, "Noisy Image (gauss 0.09)", r.NoisyTitle)
	})
}
