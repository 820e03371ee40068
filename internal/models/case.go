package models

// Case represents a single clinical case: one set of per-segment biomarker
// values keyed by canonical AHA segment names.
type Case struct {
	// ID identifies the case within its source dataset.
	ID string

	// Biomarker is the name of the measured quantity, e.g. "strain".
	Biomarker string

	// Values maps canonical segment names to measured values.
	Values map[string]float64
}
