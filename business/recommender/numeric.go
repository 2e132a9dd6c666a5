package recommender

import (
	"strconv"
	"strings"
)

// parseRatioOrScalar reads a sensory field that is either a plain
// number ("45") or a slash ratio ("60/100" -> 0.6). The roast measure
// arrives in both shapes in the source data.
func parseRatioOrScalar(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}

	if strings.Contains(raw, "/") {
		parts := strings.SplitN(raw, "/", 2)
		num, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return 0, false
		}
		denom, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil || denom == 0 {
			return 0, false
		}
		return num / denom, true
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
