package recommender

import "fmt"

// The six sensory features, in the fixed order used by every vector in
// this package: preference vectors, scaled catalog vectors, and the
// columns fitted by the scaler.
var featureNames = []string{"agtron", "aroma", "acid", "body", "flavor", "aftertaste"}

const (
	idxAgtron = iota
	idxAroma
	idxAcid
	idxBody
	idxFlavor
	idxAftertaste
)

// FeatureNames returns the ordered sensory feature names. Callers use
// this to build preference controls generically; the returned slice is
// a copy.
func FeatureNames() []string {
	out := make([]string, len(featureNames))
	copy(out, featureNames)
	return out
}

// buildPreferenceVector converts a caller-supplied preference map into
// the fixed-order vector. Every feature must be present and lie in
// [0,1]; unknown keys are ignored (the guided front end passes extras
// like with_milk that the engine never reads).
func buildPreferenceVector(prefs map[string]float64) ([]float64, error) {
	vec := make([]float64, len(featureNames))
	for i, name := range featureNames {
		v, ok := prefs[name]
		if !ok {
			return nil, fmt.Errorf("missing preference for feature %q", name)
		}
		if v < 0 || v > 1 {
			return nil, fmt.Errorf("preference for feature %q must be in [0,1], got %v", name, v)
		}
		vec[i] = v
	}
	return vec, nil
}
