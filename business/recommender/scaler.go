package recommender

// minMaxScaler holds the per-feature min and max observed across the
// catalog at fit time. The fitted bounds are fixed for the lifetime of
// the loaded catalog and never refit per query.
type minMaxScaler struct {
	min []float64
	max []float64
}

func fitScaler(vectors [][]float64) *minMaxScaler {
	s := &minMaxScaler{
		min: make([]float64, len(featureNames)),
		max: make([]float64, len(featureNames)),
	}

	for j := range featureNames {
		s.min[j] = vectors[0][j]
		s.max[j] = vectors[0][j]
	}
	for _, vec := range vectors[1:] {
		for j, v := range vec {
			if v < s.min[j] {
				s.min[j] = v
			}
			if v > s.max[j] {
				s.max[j] = v
			}
		}
	}

	return s
}

// transform rescales a raw sensory vector to [0,1] in place. A feature
// whose fitted max equals its min maps to the constant 0.
func (s *minMaxScaler) transform(vec []float64) {
	for j, v := range vec {
		span := s.max[j] - s.min[j]
		if span == 0 {
			vec[j] = 0
			continue
		}
		vec[j] = (v - s.min[j]) / span
	}
}
