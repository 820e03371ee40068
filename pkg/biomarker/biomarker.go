// Package biomarker defines the clinical quantities the bullseye plot can
// display and the coloring metadata attached to each of them.
package biomarker

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Kind identifies a supported biomarker.
type Kind int

const (
	Strain Kind = iota
	MyocardialWork
	WallThickness
	WallThicknessDifference
)

// String returns the canonical identifier used on the command line and in
// configuration files.
func (k Kind) String() string {
	switch k {
	case Strain:
		return "strain"
	case MyocardialWork:
		return "myocardial_work"
	case WallThickness:
		return "wall_thickness"
	case WallThicknessDifference:
		return "wall_thickness_difference"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind resolves a biomarker identifier. Matching is case insensitive
// and accepts both underscore and hyphen separators.
func ParseKind(s string) (Kind, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for _, k := range []Kind{Strain, MyocardialWork, WallThickness, WallThicknessDifference} {
		if normalized == k.String() {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown biomarker %q; available: strain, myocardial_work, wall_thickness, wall_thickness_difference", s)
}

// Preset carries the fixed visualization parameters of one biomarker:
// which colormap to use, how values map onto it, and the labels shown
// next to the plot.
type Preset struct {
	// Colormap names one of the gradients provided by the render package.
	Colormap string

	// Levels are boundary values for discrete (contour style) coloring.
	// When nil, coloring is continuous over [Min, Max].
	Levels []float64

	// Min and Max bound the coloring range. For level presets they equal
	// the first and last boundary.
	Min, Max float64

	// Units is the measurement unit label, Title the plot heading.
	Units string
	Title string
}

// presets is the closed lookup table; biomarker dispatch never inspects
// types at runtime.
var presets = map[Kind]Preset{
	Strain: {
		Colormap: "seismic_r",
		Levels:   tickValues(-30, 30, 12),
		Min:      -30,
		Max:      30,
		Units:    "%",
		Title:    "Longitudinal strain",
	},
	MyocardialWork: {
		Colormap: "rainbow",
		Min:      1000,
		Max:      3000,
		Units:    "mmHg%",
		Title:    "Myocardial work index",
	},
	WallThickness: {
		Colormap: "RdYlBu_r",
		Min:      4,
		Max:      10,
		Units:    "mm",
		Title:    "Wall thickness",
	},
	WallThicknessDifference: {
		Colormap: "coolwarm",
		Min:      -2,
		Max:      2,
		Units:    "mm",
		Title:    "Wall thickness difference",
	},
}

// PresetFor returns the visualization preset of a biomarker.
func PresetFor(k Kind) (Preset, error) {
	p, ok := presets[k]
	if !ok {
		return Preset{}, fmt.Errorf("no preset for biomarker %v", k)
	}
	return p, nil
}

// Clamp limits every grid value to the coloring range in place, so the
// rendered plot never runs off the colormap.
func (p Preset) Clamp(grid *mat.Dense) {
	rows, cols := grid.Dims()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := grid.At(r, c)
			if v < p.Min {
				grid.Set(r, c, p.Min)
			} else if v > p.Max {
				grid.Set(r, c, p.Max)
			}
		}
	}
}

// Normalize maps a value into [0, 1] for colormap lookup. Level presets
// quantize to the boundary bins the way a contour plot does; range presets
// scale linearly.
func (p Preset) Normalize(v float64) float64 {
	if len(p.Levels) > 1 {
		// Index of the bin holding v, snapped to the bin's lower edge.
		bin := 0
		for i := 1; i < len(p.Levels)-1; i++ {
			if v >= p.Levels[i] {
				bin = i
			}
		}
		return float64(bin) / float64(len(p.Levels)-2)
	}
	if p.Max == p.Min {
		return 0
	}
	t := (v - p.Min) / (p.Max - p.Min)
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// tickValues spreads boundary levels over [lo, hi] using a step chosen from
// the usual 1-2-2.5-5-10 progression, covering the full range with roughly
// the requested number of bins.
func tickValues(lo, hi float64, bins int) []float64 {
	raw := (hi - lo) / float64(bins)
	step := niceStep(raw)

	start := step * math.Floor(lo/step)
	var out []float64
	for v := start; v <= hi+step/2; v += step {
		out = append(out, v)
	}
	return out
}

func niceStep(raw float64) float64 {
	scale := 1.0
	for raw >= 10 {
		raw /= 10
		scale *= 10
	}
	for raw < 1 {
		raw *= 10
		scale /= 10
	}
	for _, s := range []float64{1, 2, 2.5, 5, 10} {
		if raw <= s {
			return s * scale
		}
	}
	return 10 * scale
}
