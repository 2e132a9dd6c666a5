package recommender

import (
	"errors"
	"sort"
	"strings"

	"brewCompass/domain"
	"brewCompass/pkg/logger"
)

// CatalogItem is one cleaned catalog row. Sensory holds the six scaled
// features in featureNames order. Index is the item's stable position
// in the fitted catalog and selects the matching row of the
// document-term matrix; it never changes after load.
type CatalogItem struct {
	Index        int       `json:"index"`
	Name         string    `json:"name"`
	Origin       string    `json:"origin"`
	Roast        string    `json:"roast"`
	Sensory      []float64 `json:"sensory"`
	PricePer100g *float64  `json:"price_per_100g"`
	Description  string    `json:"description"`

	// fullDesc is the lowercased, filler-stripped concatenation of all
	// description fields, the text the vectorizer was fitted on.
	fullDesc string
}

// FittedCatalog is the immutable result of the one-time load: cleaned
// items, the fitted scaler bounds, the fitted vectorizer, and the
// document-term matrix aligned 1:1 by row position with Items. It is
// shared read-only state; nothing mutates it after Load returns, so
// concurrent readers need no locking.
type FittedCatalog struct {
	items      []CatalogItem
	scaler     *minMaxScaler
	vectorizer *vectorizer
	docMatrix  [][]float64

	priceMin float64
	priceMax float64
	hasPrice bool
	origins  []string
}

var ErrEmptyCatalog = errors.New("no usable catalog rows after cleaning")

// Load cleans raw rows, drops the unusable ones, fits the scaler and
// the vectorizer, and returns the catalog ready to serve. A row is
// usable only when all six sensory fields parse to numbers; price
// parsing failures keep the row but leave the price undefined.
func Load(rows []domain.CoffeeRow) (*FittedCatalog, error) {
	items := make([]CatalogItem, 0, len(rows))
	raw := make([][]float64, 0, len(rows))
	dropped := 0

	for _, row := range rows {
		vec, ok := parseSensory(row)
		if !ok {
			dropped++
			continue
		}

		fullDesc := Preprocess(strings.Join([]string{row.Desc1, row.Desc2, row.Desc3}, " "))

		items = append(items, CatalogItem{
			Index:        len(items), // contiguous after drops
			Name:         row.Name,
			Origin:       row.Origin,
			Roast:        row.Roast,
			PricePer100g: parsePricePer100g(row.EstPrice),
			Description:  row.Desc1,
			fullDesc:     fullDesc,
		})
		raw = append(raw, vec)
	}

	if len(items) == 0 {
		return nil, ErrEmptyCatalog
	}

	scaler := fitScaler(raw)
	for i := range items {
		scaler.transform(raw[i])
		items[i].Sensory = raw[i]
	}

	docs := make([]string, len(items))
	for i, item := range items {
		docs[i] = item.fullDesc
	}
	vec, matrix := fitVectorizer(docs)

	c := &FittedCatalog{
		items:      items,
		scaler:     scaler,
		vectorizer: vec,
		docMatrix:  matrix,
	}
	c.fitPriceRange()
	c.collectOrigins()

	logger.Info("catalog loaded",
		"items", len(items),
		"dropped_rows", dropped,
		"vocabulary_terms", len(vec.idf),
	)

	return c, nil
}

func parseSensory(row domain.CoffeeRow) ([]float64, bool) {
	fields := []string{row.Agtron, row.Aroma, row.Acid, row.Body, row.Flavor, row.Aftertaste}

	vec := make([]float64, len(fields))
	for i, field := range fields {
		v, ok := parseRatioOrScalar(field)
		if !ok {
			return nil, false
		}
		vec[i] = v
	}
	return vec, true
}

func (c *FittedCatalog) fitPriceRange() {
	for _, item := range c.items {
		if item.PricePer100g == nil {
			continue
		}
		p := *item.PricePer100g
		if !c.hasPrice {
			c.priceMin, c.priceMax = p, p
			c.hasPrice = true
			continue
		}
		if p < c.priceMin {
			c.priceMin = p
		}
		if p > c.priceMax {
			c.priceMax = p
		}
	}
}

func (c *FittedCatalog) collectOrigins() {
	seen := make(map[string]struct{})
	for _, item := range c.items {
		if item.Origin == "" {
			continue
		}
		if _, ok := seen[item.Origin]; ok {
			continue
		}
		seen[item.Origin] = struct{}{}
		c.origins = append(c.origins, item.Origin)
	}
	sort.Strings(c.origins)
}

// Items returns the cleaned catalog in stable index order. Callers
// must treat the result as read-only.
func (c *FittedCatalog) Items() []CatalogItem {
	return c.items
}

func (c *FittedCatalog) Len() int {
	return len(c.items)
}

// PriceRange reports the catalog-wide min and max price per 100 g over
// the items with a defined price. ok is false when no item has one.
func (c *FittedCatalog) PriceRange() (min, max float64, ok bool) {
	return c.priceMin, c.priceMax, c.hasPrice
}

// Origins returns the distinct origins, sorted.
func (c *FittedCatalog) Origins() []string {
	return c.origins
}
