// Package segments validates and orders left-ventricle segment values
// according to the standardized AHA 17- and 18-segment models.
package segments

import (
	"fmt"
	"sort"
	"strings"
)

// Names17 is the canonical ordering of the AHA 17-segment model:
// six basal segments, six mid segments, four apical segments and the apex.
var Names17 = []string{
	"Basal Anterior",
	"Basal Anteroseptal",
	"Basal Inferoseptal",
	"Basal Inferior",
	"Basal Inferolateral",
	"Basal Anterolateral",
	"Mid Anterior",
	"Mid Anteroseptal",
	"Mid Inferoseptal",
	"Mid Inferior",
	"Mid Inferolateral",
	"Mid Anterolateral",
	"Apical Anterior",
	"Apical Septal",
	"Apical Inferior",
	"Apical Lateral",
	"Apex",
}

// Names18 is the canonical ordering of the AHA 18-segment model. It has six
// apical segments and no explicit apex; the apex value is derived as the mean
// of the apical ring.
var Names18 = []string{
	"Basal Anterior",
	"Basal Anteroseptal",
	"Basal Inferoseptal",
	"Basal Inferior",
	"Basal Inferolateral",
	"Basal Anterolateral",
	"Mid Anterior",
	"Mid Anteroseptal",
	"Mid Inferoseptal",
	"Mid Inferior",
	"Mid Inferolateral",
	"Mid Anterolateral",
	"Apical Anterior",
	"Apical Anteroseptal",
	"Apical Inferoseptal",
	"Apical Inferior",
	"Apical Inferolateral",
	"Apical Anterolateral",
}

// WallNames are the six circumferential wall labels shared by both models,
// used by the rendering layer for outer annotations.
var WallNames = []string{
	"Anterior",
	"Anteroseptal",
	"Inferoseptal",
	"Inferior",
	"Inferolateral",
	"Anterolateral",
}

// CanonicalNames returns the canonical name list for the given segment count.
func CanonicalNames(n int) ([]string, error) {
	switch n {
	case 17:
		return Names17, nil
	case 18:
		return Names18, nil
	default:
		return nil, &CountError{Got: n}
	}
}

// CountError reports a segment collection whose size is neither 17 nor 18.
type CountError struct {
	Got int
}

func (e *CountError) Error() string {
	return fmt.Sprintf("incorrect number of segment values provided: %d; provide either 17 or 18 segment values", e.Got)
}

// NameError reports a name-keyed input whose keys do not match the canonical
// segment names exactly.
type NameError struct {
	Missing    []string
	Unexpected []string
	Expected   []string
}

func (e *NameError) Error() string {
	var b strings.Builder
	b.WriteString("segment names do not match the AHA standard")
	if len(e.Missing) > 0 {
		fmt.Fprintf(&b, "; missing: %s", strings.Join(e.Missing, ", "))
	}
	if len(e.Unexpected) > 0 {
		fmt.Fprintf(&b, "; unrecognized: %s", strings.Join(e.Unexpected, ", "))
	}
	fmt.Fprintf(&b, "; expected exactly: %s", strings.Join(e.Expected, ", "))
	return b.String()
}

// ValueSet holds segment values in canonical anatomical order. It is
// immutable after construction; switching case or biomarker means building
// a new set.
type ValueSet struct {
	values []float64
}

// FromOrdered builds a ValueSet from values already arranged in canonical
// order. The caller asserts the ordering; only the count is validated.
func FromOrdered(values []float64) (*ValueSet, error) {
	if len(values) != 17 && len(values) != 18 {
		return nil, &CountError{Got: len(values)}
	}
	vs := &ValueSet{values: make([]float64, len(values))}
	copy(vs.values, values)
	return vs, nil
}

// FromNamed builds a ValueSet from a map keyed by canonical segment names.
// Every canonical name for the detected size must be present exactly once;
// matching is exact and case sensitive.
func FromNamed(values map[string]float64) (*ValueSet, error) {
	names, err := CanonicalNames(len(values))
	if err != nil {
		return nil, err
	}

	var missing []string
	ordered := make([]float64, 0, len(names))
	for _, name := range names {
		v, ok := values[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		ordered = append(ordered, v)
	}

	if len(missing) > 0 {
		canonical := make(map[string]bool, len(names))
		for _, name := range names {
			canonical[name] = true
		}
		var unexpected []string
		for name := range values {
			if !canonical[name] {
				unexpected = append(unexpected, name)
			}
		}
		sort.Strings(unexpected)
		return nil, &NameError{Missing: missing, Unexpected: unexpected, Expected: names}
	}

	return &ValueSet{values: ordered}, nil
}

// Len returns the segment count, either 17 or 18.
func (vs *ValueSet) Len() int { return len(vs.values) }

// Values returns a copy of the canonical ordered values.
func (vs *ValueSet) Values() []float64 {
	out := make([]float64, len(vs.values))
	copy(out, vs.values)
	return out
}

// At returns the value of segment i in canonical order.
func (vs *ValueSet) At(i int) float64 { return vs.values[i] }

// Basal returns the six basal-ring values.
func (vs *ValueSet) Basal() []float64 { return vs.slice(0, 6) }

// Mid returns the six mid-ring values.
func (vs *ValueSet) Mid() []float64 { return vs.slice(6, 12) }

// Apical returns the apical-ring values: four for the 17-segment model,
// six for the 18-segment model.
func (vs *ValueSet) Apical() []float64 {
	if len(vs.values) == 17 {
		return vs.slice(12, 16)
	}
	return vs.slice(12, 18)
}

// Apex returns the apex value: segment 17 in the 17-segment model, or the
// arithmetic mean of the six apical segments in the 18-segment model.
func (vs *ValueSet) Apex() float64 {
	if len(vs.values) == 17 {
		return vs.values[16]
	}
	sum := 0.0
	for _, v := range vs.values[12:] {
		sum += v
	}
	return sum / 6
}

func (vs *ValueSet) slice(lo, hi int) []float64 {
	out := make([]float64, hi-lo)
	copy(out, vs.values[lo:hi])
	return out
}
