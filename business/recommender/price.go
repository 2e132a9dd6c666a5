package recommender

import (
	"regexp"
	"strconv"
	"strings"
)

const gramsPerOunce = 28.3495

// Matches "price/quantity" with an optional trailing unit token, e.g.
// "$350/227g", "NT$ 400 / 4 oz.", "19.95/12 ounces". Surrounding text
// and currency symbols are ignored.
var priceQuantityRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*/\s*(\d+(?:\.\d+)?)\s*([A-Za-z]+)?`)

// parsePricePer100g extracts a unit price in currency per 100 g from a
// raw price/quantity string. Ounce-like units convert at 28.3495 g/oz;
// absent or unrecognized units are treated as grams. Returns nil when
// the string carries no parseable price/quantity pair — callers must
// treat nil as "price unknown", never as zero.
func parsePricePer100g(raw string) *float64 {
	m := priceQuantityRe.FindStringSubmatch(raw)
	if m == nil {
		return nil
	}

	price, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	quantity, err := strconv.ParseFloat(m[2], 64)
	if err != nil || quantity == 0 {
		return nil
	}

	if isOunceUnit(m[3]) {
		quantity *= gramsPerOunce
	}

	out := price / quantity * 100
	return &out
}

func isOunceUnit(unit string) bool {
	unit = strings.ToLower(unit)
	return strings.HasPrefix(unit, "oz") || strings.HasPrefix(unit, "ounce")
}
