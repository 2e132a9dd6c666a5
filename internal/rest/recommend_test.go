package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"brewCompass/business/recommender"
	"brewCompass/domain"

	"github.com/labstack/echo/v4"
)

func testHandler(t *testing.T) *RecommendHandler {
	t.Helper()

	catalog, err := recommender.Load([]domain.CoffeeRow{
		{
			Name: "Ethiopia Sidamo", Origin: "Ethiopia", Roast: "Light",
			Agtron: "90/100", Aroma: "9", Acid: "8.5", Body: "7", Flavor: "9", Aftertaste: "8",
			EstPrice: "350/227g", Desc1: "Bright and floral.",
		},
		{
			Name: "Sumatra Mandheling", Origin: "Indonesia", Roast: "Dark",
			Agtron: "30/100", Aroma: "7", Acid: "5", Body: "9", Flavor: "7.5", Aftertaste: "7.5",
			EstPrice: "400/4oz", Desc1: "Earthy and heavy.",
		},
		{
			Name: "Brazil Santos", Origin: "Brazil", Roast: "Medium",
			Agtron: "55/100", Aroma: "8", Acid: "6", Body: "8", Flavor: "8", Aftertaste: "7",
			EstPrice: "n/a", Desc1: "Nutty and chocolatey.",
		},
	})
	if err != nil {
		t.Fatalf("failed to load fixture catalog: %v", err)
	}

	return NewRecommendHandler(recommender.NewService(catalog), 5, 0.5)
}

func doRecommend(t *testing.T, h echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned an error: %v", err)
	}
	return rec
}

// rankedBefore checks that the serialized response lists a before b;
// recommendations are marshalled in rank order.
func rankedBefore(body, a, b string) bool {
	i, j := strings.Index(body, a), strings.Index(body, b)
	return i >= 0 && (j < 0 || i < j)
}

func TestRecommend_OK(t *testing.T) {
	h := testHandler(t)

	rec := doRecommend(t, h.Recommend, `{
		"preferences": {"agtron": 1, "aroma": 1, "acid": 1, "body": 0, "flavor": 1, "aftertaste": 1},
		"text": "bright floral coffee",
		"top_n": 2
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body := rec.Body.String()
	if !rankedBefore(body, "Ethiopia Sidamo", "Brazil Santos") {
		t.Errorf("expected Ethiopia Sidamo ranked first: %s", body)
	}
	if strings.Contains(body, "Sumatra Mandheling") {
		t.Errorf("expected the farthest profile cut by top_n=2: %s", body)
	}
}

func TestRecommend_RoastLevelOverridesAgtron(t *testing.T) {
	h := testHandler(t)

	// roast_level 0 means the lightest roast on screen, which is the
	// high end of the agtron axis
	rec := doRecommend(t, h.Recommend, `{
		"preferences": {"agtron": 0, "aroma": 1, "acid": 1, "body": 0, "flavor": 1, "aftertaste": 1},
		"roast_level": 0,
		"alpha": 1
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body := rec.Body.String()
	if !rankedBefore(body, "Ethiopia Sidamo", "Sumatra Mandheling") ||
		!rankedBefore(body, "Ethiopia Sidamo", "Brazil Santos") {
		t.Errorf("expected the light roast ranked first: %s", body)
	}
}

func TestRecommend_MissingPreferences(t *testing.T) {
	h := testHandler(t)

	rec := doRecommend(t, h.Recommend, `{"text": "anything"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRecommend_IncompletePreferenceVector(t *testing.T) {
	h := testHandler(t)

	rec := doRecommend(t, h.Recommend, `{"preferences": {"agtron": 0.5}}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}

	var respErr ResponseError
	if err := json.Unmarshal(rec.Body.Bytes(), &respErr); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if !strings.HasPrefix(respErr.Message, "missing preference for feature") {
		t.Errorf("expected a missing-feature message, got %q", respErr.Message)
	}
}

func TestRecommend_AlphaOutOfRange(t *testing.T) {
	h := testHandler(t)

	rec := doRecommend(t, h.Recommend, `{
		"preferences": {"agtron": 0.5, "aroma": 0.5, "acid": 0.5, "body": 0.5, "flavor": 0.5, "aftertaste": 0.5},
		"alpha": 1.5
	}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRecommend_BudgetFilterEmptyResult(t *testing.T) {
	h := testHandler(t)

	rec := doRecommend(t, h.Recommend, `{
		"preferences": {"agtron": 0.5, "aroma": 0.5, "acid": 0.5, "body": 0.5, "flavor": 0.5, "aftertaste": 0.5},
		"max_budget_per_100g": 1
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body := rec.Body.String()
	for _, name := range []string{"Ethiopia Sidamo", "Sumatra Mandheling", "Brazil Santos"} {
		if strings.Contains(body, name) {
			t.Errorf("expected no recommendations under the budget, found %q: %s", name, body)
		}
	}
}

func TestGuidedRecommend_OK(t *testing.T) {
	h := testHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations/guided", strings.NewReader(`{
		"roast": "Dark",
		"strength": "Strong",
		"with_milk": true,
		"flavor_notes": ["Earthy"]
	}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.GuidedRecommend(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned an error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body := rec.Body.String()
	if !rankedBefore(body, "Sumatra Mandheling", "Brazil Santos") ||
		!rankedBefore(body, "Sumatra Mandheling", "Ethiopia Sidamo") {
		t.Errorf("expected the dark heavy roast ranked first: %s", body)
	}
}

func TestGuidedRecommend_InvalidAnswers(t *testing.T) {
	h := testHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations/guided", strings.NewReader(`{
		"roast": "Burnt",
		"strength": "Strong"
	}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.GuidedRecommend(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned an error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}
