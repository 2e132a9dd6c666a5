package questionnaire

import (
	"math"
	"testing"
)

func TestMapAnswers_RoastDependsOnMilk(t *testing.T) {
	withMilk, err := MapAnswers(Answers{Roast: "Dark", Strength: "Medium", WithMilk: true})
	if err != nil {
		t.Fatalf("MapAnswers failed: %v", err)
	}
	if withMilk.Preferences["agtron"] != 0 {
		t.Errorf("Dark with milk: expected agtron 0, got %v", withMilk.Preferences["agtron"])
	}

	black, err := MapAnswers(Answers{Roast: "Light", Strength: "Medium"})
	if err != nil {
		t.Fatalf("MapAnswers failed: %v", err)
	}
	if black.Preferences["agtron"] != 1 {
		t.Errorf("Light without milk: expected agtron 1, got %v", black.Preferences["agtron"])
	}
}

func TestMapAnswers_StrengthSetsBody(t *testing.T) {
	m, err := MapAnswers(Answers{Roast: "Medium", Strength: "Strong"})
	if err != nil {
		t.Fatalf("MapAnswers failed: %v", err)
	}
	if math.Abs(m.Preferences["body"]-0.8) > 1e-9 {
		t.Errorf("Strong: expected body 0.8, got %v", m.Preferences["body"])
	}
}

func TestMapAnswers_FlavorNoteBoosts(t *testing.T) {
	m, err := MapAnswers(Answers{Roast: "Medium", Strength: "Mild", FlavorNotes: []string{"Fruity"}})
	if err != nil {
		t.Fatalf("MapAnswers failed: %v", err)
	}
	// Fruity raises the acid base to 0.6, then the note boost lifts it
	// to the 0.7 floor
	if math.Abs(m.Preferences["acid"]-0.7) > 1e-9 {
		t.Errorf("Fruity: expected acid 0.7, got %v", m.Preferences["acid"])
	}

	m, err = MapAnswers(Answers{Roast: "Medium", Strength: "Mild", FlavorNotes: []string{"Earthy"}})
	if err != nil {
		t.Fatalf("MapAnswers failed: %v", err)
	}
	if m.Preferences["aftertaste"] < 0.7 {
		t.Errorf("Earthy: expected aftertaste boosted to at least 0.7, got %v", m.Preferences["aftertaste"])
	}
	if m.Preferences["body"] < 0.7 {
		t.Errorf("Earthy: expected body boosted to at least 0.7, got %v", m.Preferences["body"])
	}
}

func TestMapAnswers_BoostNeverLowers(t *testing.T) {
	m, err := MapAnswers(Answers{Roast: "Medium", Strength: "Strong", FlavorNotes: []string{"Earthy"}})
	if err != nil {
		t.Fatalf("MapAnswers failed: %v", err)
	}
	if math.Abs(m.Preferences["body"]-0.8) > 1e-9 {
		t.Errorf("boost must not lower a stronger preference: expected body 0.8, got %v", m.Preferences["body"])
	}
}

func TestMapAnswers_TextAndAlpha(t *testing.T) {
	// free text present: text weight engaged
	m, err := MapAnswers(Answers{Roast: "Medium", Strength: "Medium", Notes: "something chocolatey"})
	if err != nil {
		t.Fatalf("MapAnswers failed: %v", err)
	}
	if m.Text != "something chocolatey" || m.Alpha != guidedAlpha {
		t.Errorf("expected notes text with alpha %v, got %q / %v", guidedAlpha, m.Text, m.Alpha)
	}

	// no text: selected notes become the query text
	m, err = MapAnswers(Answers{Roast: "Medium", Strength: "Medium", FlavorNotes: []string{"Nutty", "Floral"}})
	if err != nil {
		t.Fatalf("MapAnswers failed: %v", err)
	}
	if m.Text != "Nutty Floral" || m.Alpha != guidedAlpha {
		t.Errorf("expected joined notes with alpha %v, got %q / %v", guidedAlpha, m.Text, m.Alpha)
	}

	// nothing textual at all: preferences carry the whole score
	m, err = MapAnswers(Answers{Roast: "Medium", Strength: "Medium"})
	if err != nil {
		t.Fatalf("MapAnswers failed: %v", err)
	}
	if m.Text != "" || m.Alpha != 1 {
		t.Errorf("expected empty text with alpha 1, got %q / %v", m.Text, m.Alpha)
	}
}

func TestMapAnswers_InvalidAnswers(t *testing.T) {
	if _, err := MapAnswers(Answers{Roast: "Burnt", Strength: "Medium"}); err == nil {
		t.Errorf("expected an error for an unknown roast answer")
	}
	if _, err := MapAnswers(Answers{Roast: "Medium", Strength: "Heroic"}); err == nil {
		t.Errorf("expected an error for an unknown strength answer")
	}
	if _, err := MapAnswers(Answers{Roast: "Medium", Strength: "Medium", FlavorNotes: []string{"Metallic"}}); err == nil {
		t.Errorf("expected an error for an unknown flavor note")
	}
}
