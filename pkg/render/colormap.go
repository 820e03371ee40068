package render

import (
	"fmt"
	"image/color"
	"math"
	"sort"
)

// Colormap maps a normalized value in [0, 1] to a color.
type Colormap interface {
	Map(x float64) color.Color
}

// Gradient is a Colormap that interpolates between a sequence of sRGB
// colors. Stops may be nil, in which case the colors are evenly spaced on
// [0, 1]; otherwise it must have the same length as Colors and ascend.
type Gradient struct {
	Colors []color.RGBA
	Stops  []float64
}

// Map returns the gradient color at x, clamping outside [0, 1].
func (g Gradient) Map(x float64) color.Color {
	if len(g.Colors) == 0 {
		return color.RGBA{A: 255}
	}
	if g.Stops == nil {
		n := x * float64(len(g.Colors)-1)
		ip, fr := math.Modf(n)
		i := int(ip)
		if i < 0 || x <= 0 {
			return g.Colors[0]
		}
		if i >= len(g.Colors)-1 {
			return g.Colors[len(g.Colors)-1]
		}
		return blendRGBA(g.Colors[i], g.Colors[i+1], fr)
	}

	i := sort.SearchFloat64s(g.Stops, x)
	if i == 0 {
		return g.Colors[0]
	}
	if i >= len(g.Colors) {
		return g.Colors[len(g.Colors)-1]
	}
	fr := (x - g.Stops[i-1]) / (g.Stops[i] - g.Stops[i-1])
	return blendRGBA(g.Colors[i-1], g.Colors[i], fr)
}

func blendRGBA(a, b color.RGBA, t float64) color.RGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + t*(float64(y)-float64(x))))
	}
	return color.RGBA{
		R: lerp(a.R, b.R),
		G: lerp(a.G, b.G),
		B: lerp(a.B, b.B),
		A: 255,
	}
}

// Built-in gradients approximating the matplotlib colormaps the clinical
// visualization guidelines call for.
var colormaps = map[string]Gradient{
	// Diverging dark red -> white -> dark blue (reversed seismic).
	"seismic_r": {
		Colors: []color.RGBA{
			{R: 128, A: 255},
			{R: 255, A: 255},
			{R: 255, G: 255, B: 255, A: 255},
			{B: 255, A: 255},
			{B: 128, A: 255},
		},
	},
	// Violet through the spectrum to red.
	"rainbow": {
		Colors: []color.RGBA{
			{R: 128, B: 255, A: 255},
			{G: 180, B: 255, A: 255},
			{G: 255, B: 128, A: 255},
			{R: 200, G: 255, A: 255},
			{R: 255, G: 160, A: 255},
			{R: 255, A: 255},
		},
	},
	// Diverging blue -> pale yellow -> red (reversed RdYlBu).
	"RdYlBu_r": {
		Colors: []color.RGBA{
			{R: 49, G: 54, B: 149, A: 255},
			{R: 145, G: 191, B: 219, A: 255},
			{R: 255, G: 255, B: 191, A: 255},
			{R: 252, G: 141, B: 89, A: 255},
			{R: 165, G: 0, B: 38, A: 255},
		},
	},
	// Muted diverging blue -> gray -> red.
	"coolwarm": {
		Colors: []color.RGBA{
			{R: 59, G: 76, B: 192, A: 255},
			{R: 221, G: 221, B: 221, A: 255},
			{R: 180, G: 4, B: 38, A: 255},
		},
	},
}

// ColormapByName resolves one of the built-in gradients.
func ColormapByName(name string) (Colormap, error) {
	g, ok := colormaps[name]
	if !ok {
		names := make([]string, 0, len(colormaps))
		for n := range colormaps {
			names = append(names, n)
		}
		sort.Strings(names)
		return nil, fmt.Errorf("unknown colormap %q; available: %v", name, names)
	}
	return g, nil
}
