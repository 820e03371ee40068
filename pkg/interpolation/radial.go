// Package interpolation produces the dense value grid behind the smooth AHA
// bullseye plot. Seventeen or eighteen discrete segment values are expanded
// into an (angular x radial) field by linear interpolation around each
// anatomical ring and then along the radius between rings.
package interpolation

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/gonum/mat"

	"smoothaha/pkg/segments"
)

// Default grid resolution: samples around the circumference and along the
// radius. The defaults give a grid fine enough that linear blending reads
// as smooth in the rendered plot.
const (
	DefaultAngularResolution = 768
	DefaultRadialResolution  = 100
)

// Radial anchor levels place the anatomical rings along the unit radius,
// ordered center to edge: apex, apical ring, mid ring, basal/mid blend,
// basal ring. The anchors differ between the 17- and 18-segment layouts.
var (
	levels17 = []float64{0, 0.33, 0.55, 0.85, 1}
	levels18 = []float64{0, 0.28, 0.5, 0.8, 1}
)

// RadialLevels returns the radial anchor positions for the given segment
// count. The returned slice is a copy.
func RadialLevels(nSegments int) ([]float64, error) {
	var levels []float64
	switch nSegments {
	case 17:
		levels = levels17
	case 18:
		levels = levels18
	default:
		return nil, &segments.CountError{Got: nSegments}
	}
	out := make([]float64, len(levels))
	copy(out, levels)
	return out, nil
}

// RadialInterpolator turns a validated segment value set into a dense grid.
// It holds no derived state; every Interpolate call recomputes the grid from
// the immutable inputs.
type RadialInterpolator struct {
	set        *segments.ValueSet
	angularRes int
	radialRes  int
}

// NewRadialInterpolator creates an interpolator for the given value set and
// grid resolution. The angular resolution must be a positive multiple of 12
// so that both the 4-wedge and 6-wedge rings divide it evenly; the radial
// resolution must be at least 2.
func NewRadialInterpolator(set *segments.ValueSet, angularRes, radialRes int) (*RadialInterpolator, error) {
	if set == nil {
		return nil, fmt.Errorf("interpolation: nil segment value set")
	}
	if angularRes <= 0 || angularRes%12 != 0 {
		return nil, fmt.Errorf("interpolation: angular resolution %d must be a positive multiple of 12", angularRes)
	}
	if radialRes < 2 {
		return nil, fmt.Errorf("interpolation: radial resolution %d must be at least 2", radialRes)
	}
	return &RadialInterpolator{
		set:        set,
		angularRes: angularRes,
		radialRes:  radialRes,
	}, nil
}

// AngularResolution returns the number of samples around the circumference.
func (ri *RadialInterpolator) AngularResolution() int { return ri.angularRes }

// RadialResolution returns the number of samples along the radius.
func (ri *RadialInterpolator) RadialResolution() int { return ri.radialRes }

// Interpolate computes the dense grid. Row index 0 is the plot center (apex)
// and the last row is the outer edge (basal ring); columns sweep the angle
// from 0 to 2 pi with exact wraparound continuity.
func (ri *RadialInterpolator) Interpolate() *mat.Dense {
	rings := ri.ringArrays()

	// Quarter-turn roll aligns wedge boundaries with the AHA clock
	// convention: anterior wall centered at 12 o'clock. All rings must be
	// shifted by the same amount.
	shift := ri.angularRes / 4
	for i := range rings {
		rings[i] = roll(rings[i], shift)
	}

	levels := levels17
	if ri.set.Len() == 18 {
		levels = levels18
	}

	grid := mat.NewDense(ri.radialRes, ri.angularRes, nil)
	positions := floats.Span(make([]float64, ri.radialRes), 0, 1)

	column := make([]float64, len(rings))
	var pl interp.PiecewiseLinear
	for j := 0; j < ri.angularRes; j++ {
		for i := range rings {
			column[i] = rings[i][j]
		}
		if err := pl.Fit(levels, column); err != nil {
			// The anchors are fixed and strictly increasing, so a fit
			// failure is a programming error.
			panic("interpolation: radial anchor fit: " + err.Error())
		}
		for r, t := range positions {
			grid.Set(r, j, pl.Predict(t))
		}
	}
	return grid
}

// ringArrays produces the circumferential value arrays ordered center to
// edge: apex, apical ring, mid ring, basal/mid blend, basal ring.
func (ri *RadialInterpolator) ringArrays() [5][]float64 {
	basal := ri.interpolateRing(ri.set.Basal())
	mid := ri.interpolateRing(ri.set.Mid())
	apical := ri.interpolateRing(ri.set.Apical())

	// The apex renders as a uniform disc at the center. For 18 segments it
	// is the mean of the apical ring; the ValueSet handles both cases.
	apex := make([]float64, ri.angularRes)
	for i := range apex {
		apex[i] = ri.set.Apex()
	}

	return [5][]float64{apex, apical, mid, basalMidBlend(basal, mid), basal}
}

// interpolateRing expands k wedge values into a full circumferential array
// by linear interpolation within each wedge. The last wedge interpolates
// back to the first value, so the array wraps around without a seam.
func (ri *RadialInterpolator) interpolateRing(values []float64) []float64 {
	k := len(values)
	if k != 4 && k != 6 {
		panic(fmt.Sprintf("interpolation: ring size %d, want 4 or 6", k))
	}

	arr := make([]float64, ri.angularRes)
	span := ri.angularRes / k
	for i := 0; i < k; i++ {
		floats.Span(arr[i*span:(i+1)*span], values[i], values[(i+1)%k])
	}
	return arr
}

// basalMidBlend synthesizes the intermediate array between the basal and mid
// rings, weighted 3:1 toward the basal values. The extra layer keeps the
// thin outer annulus of the basal ring from blending away too quickly.
func basalMidBlend(basal, mid []float64) []float64 {
	out := make([]float64, len(basal))
	for i := range basal {
		out[i] = (basal[i]*3 + mid[i]) / 4
	}
	return out
}

// roll circularly shifts a by n samples to the right.
func roll(a []float64, n int) []float64 {
	size := len(a)
	out := make([]float64, size)
	for i, v := range a {
		out[(i+n)%size] = v
	}
	return out
}
