// Package video rasterizes sigil frames and encodes them into an MP4
// container through an external ffmpeg process.
package video

import (
	"errors"
	"image"
	"image/color"
	"math"

	"github.com/cwbudde/algo-sonify/sigil"
)

var (
	ErrInvalidCanvas = errors.New("video: canvas size must be positive")
)

// Rasterizer draws polar scatter frames onto a square RGBA canvas.
// The polar origin sits at the canvas center with angle zero pointing
// east and angles increasing clockwise; a polar radius of 1 reaches
// 90% of the half-width.
type Rasterizer struct {
	size       int
	background color.RGBA
	rings      []float64 // guide ring radii in polar units
}

// RasterOption configures a Rasterizer.
type RasterOption func(*Rasterizer)

// WithBackground sets the canvas background color.
func WithBackground(c color.RGBA) RasterOption {
	return func(r *Rasterizer) {
		r.background = c
	}
}

// WithGuideRings draws faint circular guides at the given polar radii.
func WithGuideRings(radii ...float64) RasterOption {
	return func(r *Rasterizer) {
		r.rings = append([]float64(nil), radii...)
	}
}

// NewRasterizer creates a square canvas rasterizer.
func NewRasterizer(size int, opts ...RasterOption) (*Rasterizer, error) {
	if size <= 0 {
		return nil, ErrInvalidCanvas
	}

	r := &Rasterizer{
		size:       size,
		background: color.RGBA{0, 0, 0, 255}, // dark background for contrast
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r, nil
}

// Size returns the canvas edge length in pixels.
func (r *Rasterizer) Size() int {
	return r.size
}

// Render draws one frame. The returned image is freshly allocated and
// owned by the caller.
func (r *Rasterizer) Render(f sigil.Frame) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.size, r.size))

	// Fill the background.
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = r.background.R
		img.Pix[i+1] = r.background.G
		img.Pix[i+2] = r.background.B
		img.Pix[i+3] = r.background.A
	}

	cx := float64(r.size) / 2
	cy := float64(r.size) / 2
	scale := 0.45 * float64(r.size)

	for _, ring := range r.rings {
		r.strokeRing(img, cx, cy, ring*scale)
	}

	// Marker area follows the scatter convention, so the pixel radius
	// grows with the square root of the size value.
	pointScale := float64(r.size) / 450.0
	for _, m := range f.Markers {
		x := cx + m.Radius*math.Cos(m.Angle)*scale
		y := cy + m.Radius*math.Sin(m.Angle)*scale
		radiusPx := 0.5 * math.Sqrt(m.Size) * pointScale
		r.fillDisc(img, x, y, radiusPx, m.Color)
	}

	return img
}

// fillDisc alpha-blends a filled circle onto the image.
func (r *Rasterizer) fillDisc(img *image.RGBA, cx, cy, radius float64, c sigil.Color) {
	if c[3] <= 0 || radius <= 0 {
		return
	}

	x0 := int(math.Floor(cx - radius))
	x1 := int(math.Ceil(cx + radius))
	y0 := int(math.Floor(cy - radius))
	y1 := int(math.Ceil(cy + radius))

	for y := y0; y <= y1; y++ {
		if y < 0 || y >= r.size {
			continue
		}
		for x := x0; x <= x1; x++ {
			if x < 0 || x >= r.size {
				continue
			}
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			d := math.Sqrt(dx*dx + dy*dy)
			if d > radius {
				continue
			}

			// Soft one-pixel edge to avoid hard staircase borders.
			a := c[3]
			if edge := radius - d; edge < 1 {
				a *= edge
			}
			blendPixel(img, x, y, c, a)
		}
	}
}

// strokeRing draws a faint one-pixel guide circle.
func (r *Rasterizer) strokeRing(img *image.RGBA, cx, cy, radius float64) {
	if radius <= 0 {
		return
	}

	white := sigil.Color{1, 1, 1, 1}
	steps := int(2 * math.Pi * radius)
	if steps < 16 {
		steps = 16
	}
	for i := 0; i < steps; i++ {
		phi := 2 * math.Pi * float64(i) / float64(steps)
		x := int(cx + radius*math.Cos(phi))
		y := int(cy + radius*math.Sin(phi))
		if x < 0 || x >= r.size || y < 0 || y >= r.size {
			continue
		}
		blendPixel(img, x, y, white, 0.25)
	}
}

// blendPixel alpha-blends a color with opacity a over the pixel at (x, y).
func blendPixel(img *image.RGBA, x, y int, c sigil.Color, a float64) {
	if a <= 0 {
		return
	}
	if a > 1 {
		a = 1
	}

	off := img.PixOffset(x, y)
	for i := 0; i < 3; i++ {
		src := c[i] * 255
		dst := float64(img.Pix[off+i])
		img.Pix[off+i] = uint8(math.Round(src*a + dst*(1-a)))
	}
	img.Pix[off+3] = 255
}
