package rest

import (
	"context"
	"net/http"
	"strings"
	"time"

	"brewCompass/business/questionnaire"
	"brewCompass/business/recommender"
	"brewCompass/domain"
	"brewCompass/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	RecommenderService interface {
		Recommend(ctx context.Context, q recommender.Query) ([]domain.Recommendation, error)
	}

	RecommendHandler struct {
		validate     *validator.Validate
		service      RecommenderService
		defaultTopN  int
		defaultAlpha float64
		timeout      time.Duration
	}

	// RecommendRequest is the expert-mode request: raw sensory sliders
	// plus free text. RoastLevel is an optional convenience slider
	// (0 = dark, 1 = light on screen) that overrides the agtron
	// preference after inversion, matching the catalog's orientation.
	RecommendRequest struct {
		Preferences      map[string]float64 `json:"preferences" validate:"required"`
		RoastLevel       *float64           `json:"roast_level" validate:"omitempty,gte=0,lte=1"`
		Text             string             `json:"text"`
		TopN             int                `json:"top_n" validate:"gte=0"`
		Alpha            *float64           `json:"alpha" validate:"omitempty,gte=0,lte=1"`
		MaxBudgetPer100g *float64           `json:"max_budget_per_100g" validate:"omitempty,gte=0"`
	}

	// GuidedRecommendRequest is the beginner questionnaire.
	GuidedRecommendRequest struct {
		Roast            string   `json:"roast" validate:"required,oneof=Light Medium Dark"`
		FlavorNotes      []string `json:"flavor_notes" validate:"omitempty,dive,oneof=Fruity Nutty Chocolatey Floral Earthy"`
		WithMilk         bool     `json:"with_milk"`
		Strength         string   `json:"strength" validate:"required,oneof=Mild Medium Strong"`
		Notes            string   `json:"notes"`
		TopN             int      `json:"top_n" validate:"gte=0"`
		MaxBudgetPer100g *float64 `json:"max_budget_per_100g" validate:"omitempty,gte=0"`
	}
)

func NewRecommendHandler(service RecommenderService, defaultTopN int, defaultAlpha float64) *RecommendHandler {
	return &RecommendHandler{
		validate:     validator.New(),
		service:      service,
		defaultTopN:  defaultTopN,
		defaultAlpha: defaultAlpha,
		timeout:      10 * time.Second,
	}
}

func (h *RecommendHandler) Recommend(c echo.Context) error {
	var req RecommendRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind recommend request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&req); err != nil {
		logger.Error("Failed to validate recommend request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	prefs := make(map[string]float64, len(req.Preferences))
	for k, v := range req.Preferences {
		prefs[k] = v
	}
	if req.RoastLevel != nil {
		// The on-screen slider runs light-to-dark the opposite way to
		// the agtron axis.
		prefs["agtron"] = 1 - *req.RoastLevel
	}

	alpha := h.defaultAlpha
	if req.Alpha != nil {
		alpha = *req.Alpha
	}

	topN := req.TopN
	if topN <= 0 {
		topN = h.defaultTopN
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	recs, err := h.service.Recommend(ctx, recommender.Query{
		Preferences:      prefs,
		Text:             req.Text,
		TopN:             topN,
		Alpha:            alpha,
		MaxBudgetPer100g: req.MaxBudgetPer100g,
	})
	if err != nil {
		if isQueryValidationError(err) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to compute recommendations", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(recs))
}

func (h *RecommendHandler) GuidedRecommend(c echo.Context) error {
	var req GuidedRecommendRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind guided recommend request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&req); err != nil {
		logger.Error("Failed to validate guided recommend request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	mapped, err := questionnaire.MapAnswers(questionnaire.Answers{
		Roast:       req.Roast,
		FlavorNotes: req.FlavorNotes,
		WithMilk:    req.WithMilk,
		Strength:    req.Strength,
		Notes:       req.Notes,
	})
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	topN := req.TopN
	if topN <= 0 {
		topN = h.defaultTopN
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	recs, err := h.service.Recommend(ctx, recommender.Query{
		Preferences:      mapped.Preferences,
		Text:             mapped.Text,
		TopN:             topN,
		Alpha:            mapped.Alpha,
		MaxBudgetPer100g: req.MaxBudgetPer100g,
	})
	if err != nil {
		if isQueryValidationError(err) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to compute guided recommendations", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(recs))
}

// isQueryValidationError distinguishes caller mistakes from engine
// failures.
func isQueryValidationError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "missing preference for feature") ||
		strings.HasPrefix(msg, "preference for feature") ||
		msg == "alpha must be in [0,1]"
}
