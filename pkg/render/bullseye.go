// Package render rasterizes an interpolated segment grid into the standard
// AHA bullseye image: a polar color field with ring and wedge boundaries,
// per-segment value annotations and wall labels.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"gonum.org/v1/gonum/mat"

	"smoothaha/pkg/biomarker"
	"smoothaha/pkg/segments"
)

// Visual ring boundaries of the two layouts, fractions of the unit radius.
// These are drawing positions, distinct from the interpolation anchors.
var (
	ringBounds17 = []float64{0.2, 0.4667, 0.7333, 1}
	ringBounds18 = []float64{0.38, 0.69, 1}
)

// apicalLabelRadius18 positions apical value labels in the 18-segment
// layout, which has no apex disc to avoid.
const apicalLabelRadius18 = 0.25

// Options control the rendered image.
type Options struct {
	// Size is the width and height of the square output image in pixels.
	Size int

	// DrawBounds toggles the ring and wedge boundary overlay.
	DrawBounds bool

	// Annotate toggles per-segment value labels and wall names.
	Annotate bool

	// Background fills everything outside the disc. Zero value means white.
	Background color.RGBA
}

// DefaultOptions returns the options used for publication-style output.
func DefaultOptions() Options {
	return Options{
		Size:       800,
		DrawBounds: true,
		Annotate:   true,
		Background: color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// Bullseye renders one interpolated case.
type Bullseye struct {
	set    *segments.ValueSet
	grid   *mat.Dense
	preset biomarker.Preset
	cmap   Colormap
	opts   Options
}

// NewBullseye creates a renderer for the given value set and its
// interpolated grid. The grid must be oriented radius-major, the way the
// interpolation package produces it.
func NewBullseye(set *segments.ValueSet, grid *mat.Dense, preset biomarker.Preset, opts Options) (*Bullseye, error) {
	if set == nil || grid == nil {
		return nil, fmt.Errorf("render: nil value set or grid")
	}
	if opts.Size < 64 {
		return nil, fmt.Errorf("render: image size %d too small", opts.Size)
	}
	if opts.Background.A == 0 {
		opts.Background = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	cmap, err := ColormapByName(preset.Colormap)
	if err != nil {
		return nil, err
	}
	return &Bullseye{set: set, grid: grid, preset: preset, cmap: cmap, opts: opts}, nil
}

// Render rasterizes the bullseye into an RGBA image.
func (b *Bullseye) Render() *image.RGBA {
	size := b.opts.Size
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	margin := size / 8
	cx := float64(size) / 2
	cy := float64(size) / 2
	radius := float64(size)/2 - float64(margin)

	rows, cols := b.grid.Dims()
	bounds := b.ringBounds()

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) - cx
			dy := cy - float64(y) // image y grows downward
			rho := math.Hypot(dx, dy) / radius
			if rho > 1 {
				img.SetRGBA(x, y, b.opts.Background)
				continue
			}

			theta := math.Atan2(dy, dx)
			if theta < 0 {
				theta += 2 * math.Pi
			}

			r := int(math.Round(rho * float64(rows-1)))
			j := int(theta/(2*math.Pi)*float64(cols)) % cols
			c := b.cmap.Map(b.preset.Normalize(b.grid.At(r, j)))

			if b.opts.DrawBounds && b.onBoundary(rho, theta, bounds, radius) {
				c = color.RGBA{R: 40, G: 40, B: 40, A: 255}
			}

			cr, cg, cb, _ := c.RGBA()
			img.SetRGBA(x, y, color.RGBA{R: uint8(cr >> 8), G: uint8(cg >> 8), B: uint8(cb >> 8), A: 255})
		}
	}

	if b.opts.Annotate {
		b.annotate(img, cx, cy, radius, bounds)
	}
	return img
}

// SavePNG renders the bullseye and writes it as a PNG file.
func (b *Bullseye) SavePNG(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, b.Render())
}

func (b *Bullseye) ringBounds() []float64 {
	if b.set.Len() == 17 {
		return ringBounds17
	}
	return ringBounds18
}

// onBoundary reports whether a polar position lies on a ring circle or a
// wedge spoke. Line width is fixed in pixels, so the angular tolerance
// shrinks with the radius.
func (b *Bullseye) onBoundary(rho, theta float64, bounds []float64, radius float64) bool {
	const lineWidthPx = 1.5
	tol := lineWidthPx / radius

	for _, bound := range bounds {
		if math.Abs(rho-bound) < tol {
			return true
		}
	}

	// Wedge spokes. The outer rings always use six borders at multiples of
	// 60 degrees; the 17-segment apical ring uses four borders offset by
	// -45 degrees.
	outerInner := bounds[len(bounds)-3]
	if rho >= outerInner {
		if nearSpokeAngle(theta, 6, 0, rho, tol) {
			return true
		}
	}
	if b.set.Len() == 17 {
		if rho >= bounds[0] && rho < outerInner && nearSpokeAngle(theta, 4, -45, rho, tol) {
			return true
		}
	} else if rho < outerInner {
		if nearSpokeAngle(theta, 6, 0, rho, tol) {
			return true
		}
	}
	return false
}

// nearSpokeAngle reports whether theta is within the angular tolerance of
// one of n evenly spaced spokes offset by offsetDeg.
func nearSpokeAngle(theta float64, n int, offsetDeg float64, rho, tol float64) bool {
	if rho < 1e-6 {
		return false
	}
	for i := 0; i < n; i++ {
		spoke := math.Mod(float64(i)*360/float64(n)+offsetDeg+360, 360) * math.Pi / 180
		d := math.Abs(theta - spoke)
		if d > math.Pi {
			d = 2*math.Pi - d
		}
		if d*rho < tol {
			return true
		}
	}
	return false
}

// annotate draws segment values at wedge centers, wall names outside the
// disc and the preset title above the plot.
func (b *Bullseye) annotate(img *image.RGBA, cx, cy, radius float64, bounds []float64) {
	n := len(bounds)
	basalRadius := (bounds[n-2] + bounds[n-1]) / 2
	midRadius := (bounds[n-3] + bounds[n-2]) / 2

	values := b.set.Values()
	for i := 0; i < 6; i++ {
		angle := float64(i)*60 + 90
		b.drawPolarText(img, cx, cy, radius, angle, basalRadius, formatValue(values[i]))
		b.drawPolarText(img, cx, cy, radius, angle, midRadius, formatValue(values[i+6]))
	}

	if b.set.Len() == 17 {
		apicalRadius := (bounds[0] + bounds[1]) / 2
		for i := 0; i < 4; i++ {
			b.drawPolarText(img, cx, cy, radius, float64(i)*90, apicalRadius, formatValue(values[12+i]))
		}
		b.drawPolarText(img, cx, cy, radius, 0, 0, formatValue(values[16]))
	} else {
		for i := 0; i < 6; i++ {
			angle := float64(i)*60 + 90
			b.drawPolarText(img, cx, cy, radius, angle, apicalLabelRadius18, formatValue(values[12+i]))
		}
	}

	for i, wall := range segments.WallNames {
		b.drawPolarText(img, cx, cy, radius, float64(i)*60+90, 1.1, wall)
	}

	title := b.preset.Title
	if b.preset.Units != "" {
		title += " [" + b.preset.Units + "]"
	}
	b.drawText(img, int(cx), b.opts.Size/16, title)
}

// drawPolarText draws centered text at a polar position relative to the
// plot center, with angle in degrees measured counterclockwise from east.
func (b *Bullseye) drawPolarText(img *image.RGBA, cx, cy, radius, angleDeg, rho float64, s string) {
	theta := angleDeg * math.Pi / 180
	x := cx + rho*radius*math.Cos(theta)
	y := cy - rho*radius*math.Sin(theta)
	b.drawText(img, int(x), int(y), s)
}

func (b *Bullseye) drawText(img *image.RGBA, x, y int, s string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
	}
	width := d.MeasureString(s)
	d.Dot = fixed.Point26_6{
		X: fixed.I(x) - width/2,
		Y: fixed.I(y) + fixed.I(basicfont.Face7x13.Ascent)/2,
	}
	d.DrawString(s)
}

// formatValue prints integers without a decimal point and everything else
// with one digit, keeping the annotations from crowding the wedges.
func formatValue(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
