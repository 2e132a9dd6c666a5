// Package questionnaire maps the beginner questionnaire's discrete
// answers onto the engine's preference vector. The lookup tables are
// presentation policy, kept separate from the ranking logic.
package questionnaire

import (
	"fmt"
	"strings"
)

type Answers struct {
	Roast       string   // Light | Medium | Dark
	FlavorNotes []string // subset of FlavorNoteOptions
	WithMilk    bool
	Strength    string // Mild | Medium | Strong
	Notes       string // optional free text
}

// Mapped is ready to hand to the recommender.
type Mapped struct {
	Preferences map[string]float64
	Text        string
	Alpha       float64
}

// Milk drinkers get pushed toward darker roasts at every label; the
// agtron axis runs 0 = dark, 1 = light.
var roastWithMilk = map[string]float64{
	"Light":  0.5,
	"Medium": 0.3,
	"Dark":   0.0,
}

var roastWithoutMilk = map[string]float64{
	"Light":  1.0,
	"Medium": 0.75,
	"Dark":   0.5,
}

var strengthBody = map[string]float64{
	"Mild":   0.3,
	"Medium": 0.5,
	"Strong": 0.8,
}

// Each selected note boosts its mapped features to at least
// boostFloor.
var flavorNoteFeatures = map[string][]string{
	"Fruity":     {"acid"},
	"Nutty":      {"flavor", "aftertaste"},
	"Chocolatey": {"body", "flavor"},
	"Floral":     {"aroma", "flavor"},
	"Earthy":     {"aftertaste", "body"},
}

const boostFloor = 0.7

// Text weight when the questionnaire produced any description text.
const guidedAlpha = 0.3

func FlavorNoteOptions() []string {
	return []string{"Fruity", "Nutty", "Chocolatey", "Floral", "Earthy"}
}

// MapAnswers validates the answers and produces the preference vector,
// query text and blend weight. When no free text and no flavor notes
// were given, alpha is 1 so ranking rests on preferences alone.
func MapAnswers(a Answers) (Mapped, error) {
	roastMap := roastWithoutMilk
	if a.WithMilk {
		roastMap = roastWithMilk
	}

	agtron, ok := roastMap[a.Roast]
	if !ok {
		return Mapped{}, fmt.Errorf("unknown roast answer %q", a.Roast)
	}

	body, ok := strengthBody[a.Strength]
	if !ok {
		return Mapped{}, fmt.Errorf("unknown strength answer %q", a.Strength)
	}

	prefs := map[string]float64{
		"agtron":     agtron,
		"body":       body,
		"acid":       0.4,
		"flavor":     0.7,
		"aroma":      0.6,
		"aftertaste": 0.5,
	}
	if contains(a.FlavorNotes, "Fruity") {
		prefs["acid"] = 0.6
	}

	for _, note := range a.FlavorNotes {
		features, ok := flavorNoteFeatures[note]
		if !ok {
			return Mapped{}, fmt.Errorf("unknown flavor note %q", note)
		}
		for _, f := range features {
			if prefs[f] < boostFloor {
				prefs[f] = boostFloor
			}
		}
	}

	text := strings.TrimSpace(a.Notes)
	if text == "" && len(a.FlavorNotes) > 0 {
		text = strings.Join(a.FlavorNotes, " ")
	}

	alpha := guidedAlpha
	if text == "" {
		alpha = 1
	}

	return Mapped{
		Preferences: prefs,
		Text:        text,
		Alpha:       alpha,
	}, nil
}

func contains(list []string, want string) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}
