package recommender

import (
	"math"
	"testing"
)

func TestParsePricePer100g_Grams(t *testing.T) {
	got := parsePricePer100g("350/227g")
	if got == nil {
		t.Fatalf("expected a parsed price, got nil")
	}
	if math.Abs(*got-154.185) > 0.01 {
		t.Errorf("350/227g: expected ~154.19 per 100g, got %v", *got)
	}
}

func TestParsePricePer100g_Ounces(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{"400/4oz", 400 / (4 * 28.3495) * 100},
		{"NT$ 575/12 oz.", 575 / (12 * 28.3495) * 100},
		{"18/8 ounces", 18 / (8 * 28.3495) * 100},
	}

	for _, tc := range cases {
		got := parsePricePer100g(tc.raw)
		if got == nil {
			t.Fatalf("%q: expected a parsed price, got nil", tc.raw)
		}
		if math.Abs(*got-tc.want) > 0.01 {
			t.Errorf("%q: expected %v, got %v", tc.raw, tc.want, *got)
		}
	}
}

func TestParsePricePer100g_DefaultUnitIsGrams(t *testing.T) {
	got := parsePricePer100g("25/250")
	if got == nil {
		t.Fatalf("expected a parsed price, got nil")
	}
	if math.Abs(*got-10) > 1e-9 {
		t.Errorf("25/250: expected 10 per 100g, got %v", *got)
	}
}

func TestParsePricePer100g_Unparseable(t *testing.T) {
	for _, raw := range []string{"n/a", "", "call for pricing", "10/0g"} {
		if got := parsePricePer100g(raw); got != nil {
			t.Errorf("%q: expected nil, got %v", raw, *got)
		}
	}
}
