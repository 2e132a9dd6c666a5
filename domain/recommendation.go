package domain

// Recommendation is one ranked result returned by the recommender.
// Sensory values are the min-max scaled scores in [0,1], not the raw
// catalog numbers. PricePer100g is nil when the source price string
// could not be parsed.
type Recommendation struct {
	Name         string   `json:"name"`
	Origin       string   `json:"origin"`
	Roast        string   `json:"roast"`
	Agtron       float64  `json:"agtron"`
	Aroma        float64  `json:"aroma"`
	Acid         float64  `json:"acid"`
	Body         float64  `json:"body"`
	Flavor       float64  `json:"flavor"`
	Aftertaste   float64  `json:"aftertaste"`
	PricePer100g *float64 `json:"price_per_100g"`
	Description  string   `json:"description"`
	Score        float64  `json:"score"`
}

// PriceRange bounds the budget input control on the caller side.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
