package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
)

// ErrShape is returned when an image or canonical buffer does not have the
// dimensions expected of it.
var ErrShape = errors.New("unexpected image shape")

// Channels is the number of colour components held per pixel in canonical form.
const Channels = 3

// Canonical is the normalised form the noise model operates on: three colour
// components per pixel in [0, 1], row-major, with any alpha channel carried
// alongside untouched.
type Canonical struct {
	Bounds   image.Rectangle
	Color    []float64
	Alpha    []uint8
	HadAlpha bool
}

// HasAlpha reports whether the decoded image carries an alpha channel worth
// preserving.
func HasAlpha(img image.Image) bool {
	switch src := img.(type) {
	case *image.NRGBA, *image.NRGBA64, *image.NYCbCrA, *image.Alpha, *image.Alpha16:
		return true
	case *image.RGBA:
		return !src.Opaque()
	case *image.RGBA64:
		return !src.Opaque()
	case *image.Paletted:
		for _, c := range src.Palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// ToCanonical splits out the alpha channel (if any), promotes greyscale to
// three identical channels and scales colour components to [0, 1].
func ToCanonical(img image.Image) (*Canonical, error) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("%w: empty bounds %v", ErrShape, bounds)
	}

	n := bounds.Dx() * bounds.Dy()
	c := &Canonical{
		Bounds:   bounds,
		Color:    make([]float64, 0, n*Channels),
		HadAlpha: HasAlpha(img),
	}
	if c.HadAlpha {
		c.Alpha = make([]uint8, 0, n)
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			switch src := img.(type) {
			case *image.Gray:
				v := float64(src.GrayAt(x, y).Y) / 255
				c.Color = append(c.Color, v, v, v)
			case *image.Gray16:
				v := float64(src.Gray16At(x, y).Y>>8) / 255
				c.Color = append(c.Color, v, v, v)
			default:
				if c.HadAlpha {
					px := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
					c.Color = append(c.Color, float64(px.R)/255, float64(px.G)/255, float64(px.B)/255)
					c.Alpha = append(c.Alpha, px.A)
				} else {
					r, g, b, _ := img.At(x, y).RGBA()
					c.Color = append(c.Color, float64(r>>8)/255, float64(g>>8)/255, float64(b>>8)/255)
				}
			}
		}
	}
	return c, nil
}

// FromCanonical scales colour back to 8 bits with round(clamp(x, 0, 1) * 255)
// and re-attaches the alpha channel unchanged. The result is an *image.NRGBA
// when the source had alpha and an opaque *image.RGBA otherwise.
func FromCanonical(c *Canonical) (image.Image, error) {
	n := c.Bounds.Dx() * c.Bounds.Dy()
	if n == 0 || len(c.Color) != n*Channels {
		return nil, fmt.Errorf("%w: %d colour values for %v", ErrShape, len(c.Color), c.Bounds)
	}
	if c.HadAlpha && len(c.Alpha) != n {
		return nil, fmt.Errorf("%w: %d alpha values for %v", ErrShape, len(c.Alpha), c.Bounds)
	}

	var (
		pix    []uint8
		stride int
		out    image.Image
	)
	if c.HadAlpha {
		nrgba := image.NewNRGBA(c.Bounds)
		pix, stride, out = nrgba.Pix, nrgba.Stride, nrgba
	} else {
		rgba := image.NewRGBA(c.Bounds)
		pix, stride, out = rgba.Pix, rgba.Stride, rgba
	}

	w := c.Bounds.Dx()
	for i := range n {
		off := (i/w)*stride + (i%w)*4
		pix[off+0] = toByte(c.Color[i*Channels+0])
		pix[off+1] = toByte(c.Color[i*Channels+1])
		pix[off+2] = toByte(c.Color[i*Channels+2])
		if c.HadAlpha {
			pix[off+3] = c.Alpha[i]
		} else {
			pix[off+3] = 0xff
		}
	}
	return out, nil
}

func toByte(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

// clamp01 maps NaN to 0.
func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
