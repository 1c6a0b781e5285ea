package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var ErrMismatchedSize = errors.New("original and noisy images differ in size")

const (
	defaultPanelSize = 800
	margin           = 24
	titleScale       = 3
	labelScale       = 2
)

// ComparisonRenderer lays out an original/noisy pair side by side on a white
// canvas with a title over each panel and an overall title on top.
type ComparisonRenderer struct {
	// PanelSize bounds the longest edge of each panel; images are scaled to fit.
	PanelSize     int
	OriginalTitle string
	NoisyTitle    string
	Background    color.Color
	Ink           color.Color
	Face          font.Face
}

func NewComparisonRenderer(variance float64) *ComparisonRenderer {
	return &ComparisonRenderer{
		PanelSize:     defaultPanelSize,
		OriginalTitle: "Original Image",
		NoisyTitle:    fmt.Sprintf("Noisy Image (gauss %g)", variance),
		Background:    color.White,
		Ink:           color.Black,
		Face:          basicfont.Face7x13,
	}
}

func (r *ComparisonRenderer) Render(original, noisy image.Image, label string) (image.Image, error) {
	if original == nil || noisy == nil {
		return nil, errors.New("nothing to render")
	}
	if original.Bounds().Size() != noisy.Bounds().Size() {
		return nil, fmt.Errorf("%w: %v vs %v", ErrMismatchedSize, original.Bounds().Size(), noisy.Bounds().Size())
	}
	if original.Bounds().Empty() {
		return nil, errors.New("cannot render an empty image")
	}

	limit := r.PanelSize
	if limit <= 0 {
		limit = defaultPanelSize
	}
	pw, ph := fitWithin(original.Bounds().Size(), limit)
	left := transform.Resize(original, pw, ph, transform.CatmullRom)
	right := transform.Resize(noisy, pw, ph, transform.CatmullRom)

	title := r.text(fmt.Sprintf("Image Comparison: %s", label), titleScale)
	leftLabel := r.text(r.OriginalTitle, labelScale)
	rightLabel := r.text(r.NoisyTitle, labelScale)

	labelHeight := max(leftLabel.Bounds().Dy(), rightLabel.Bounds().Dy())
	width := max(2*pw+3*margin, title.Bounds().Dx()+2*margin)
	height := margin + title.Bounds().Dy() + margin + labelHeight + margin/2 + ph + margin

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(r.Background), image.Point{}, draw.Src)

	y := margin
	drawCentred(canvas, title, width/2, y)
	y += title.Bounds().Dy() + margin

	panelsWidth := 2*pw + margin
	lx := (width - panelsWidth) / 2
	rx := lx + pw + margin
	drawCentred(canvas, leftLabel, lx+pw/2, y)
	drawCentred(canvas, rightLabel, rx+pw/2, y)
	y += labelHeight + margin/2

	draw.Draw(canvas, image.Rect(lx, y, lx+pw, y+ph), left, image.Point{}, draw.Over)
	draw.Draw(canvas, image.Rect(rx, y, rx+pw, y+ph), right, image.Point{}, draw.Over)

	return canvas, nil
}

// text rasterises s with the bitmap face and scales it up by an integer
// factor, keeping the glyph edges crisp.
func (r *ComparisonRenderer) text(s string, scale int) image.Image {
	metrics := r.Face.Metrics()
	w := font.MeasureString(r.Face, s).Ceil()
	h := (metrics.Ascent + metrics.Descent).Ceil()

	small := image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	d := &font.Drawer{
		Dst:  small,
		Src:  image.NewUniform(r.Ink),
		Face: r.Face,
		Dot:  fixed.Point26_6{X: 0, Y: metrics.Ascent},
	}
	d.DrawString(s)

	big := image.NewRGBA(image.Rect(0, 0, small.Bounds().Dx()*scale, small.Bounds().Dy()*scale))
	draw.NearestNeighbor.Scale(big, big.Bounds(), small, small.Bounds(), draw.Src, nil)
	return big
}

func drawCentred(dst draw.Image, src image.Image, cx, top int) {
	b := src.Bounds()
	x := cx - b.Dx()/2
	draw.Draw(dst, image.Rect(x, top, x+b.Dx(), top+b.Dy()), src, b.Min, draw.Over)
}

// fitWithin scales size so that its longest edge equals limit, preserving
// the aspect ratio. Images already smaller than limit are enlarged.
func fitWithin(size image.Point, limit int) (int, int) {
	if size.X >= size.Y {
		return limit, max(1, size.Y*limit/size.X)
	}
	return max(1, size.X*limit/size.Y), limit
}
