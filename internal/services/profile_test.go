package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/Jenicoon/fitcoach-backend/internal/models"
)

func floatPtr(v float64) *float64 { return &v }

func stringPtr(v string) *string { return &v }

func TestSanitizeProfileDefaults(t *testing.T) {
	profile, err := SanitizeProfile(models.ProfileInput{
		Height: floatPtr(180),
		Weight: floatPtr(82.5),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if profile.Goal != models.GoalWeightLoss {
		t.Fatalf("expected default goal %q, got %q", models.GoalWeightLoss, profile.Goal)
	}
	if profile.WorkoutPreference != models.WorkoutPreferenceHome {
		t.Fatalf("expected default preference %q, got %q", models.WorkoutPreferenceHome, profile.WorkoutPreference)
	}
	if profile.BodyFat != nil || profile.HealthConditions != nil || profile.Equipment != nil {
		t.Fatalf("expected absent optionals to stay nil: %+v", profile)
	}
}

func TestSanitizeProfileTrimsOptionalText(t *testing.T) {
	profile, err := SanitizeProfile(models.ProfileInput{
		Height:           floatPtr(170),
		Weight:           floatPtr(60),
		HealthConditions: stringPtr("  knee injury  "),
		Equipment:        stringPtr("   "),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if profile.HealthConditions == nil || *profile.HealthConditions != "knee injury" {
		t.Fatalf("expected trimmed health conditions, got %v", profile.HealthConditions)
	}
	if profile.Equipment != nil {
		t.Fatalf("expected whitespace-only equipment to collapse to nil, got %q", *profile.Equipment)
	}
}

func TestSanitizeProfileCollectsAllFieldErrors(t *testing.T) {
	_, err := SanitizeProfile(models.ProfileInput{
		BodyFat:           floatPtr(150),
		WorkoutPreference: "underwater",
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatal("expected error to unwrap to ErrInvalidInput")
	}
	if len(vErr.Fields) != 4 {
		t.Fatalf("expected 4 field errors, got %d: %v", len(vErr.Fields), vErr)
	}
	for _, field := range []string{"height", "weight", "bodyFat", "workoutPreference"} {
		if !strings.Contains(err.Error(), field) {
			t.Fatalf("expected error to mention %q: %v", field, err)
		}
	}
}

func TestSanitizeProfileRejectsNonPositiveMeasurements(t *testing.T) {
	_, err := SanitizeProfile(models.ProfileInput{
		Height: floatPtr(0),
		Weight: floatPtr(-5),
	})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if len(vErr.Fields) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(vErr.Fields))
	}
}

func TestBuildPlanPromptDeterministic(t *testing.T) {
	profile := models.UserProfile{
		Goal:              models.GoalMuscleGain,
		Height:            178,
		Weight:            75.4,
		BodyFat:           floatPtr(18.2),
		HealthConditions:  stringPtr("asthma"),
		WorkoutPreference: models.WorkoutPreferenceGym,
		Equipment:         stringPtr("barbell, bench"),
	}

	first := BuildPlanPrompt(profile)
	second := BuildPlanPrompt(profile)
	if first != second {
		t.Fatal("expected identical prompts for identical profiles")
	}
	for _, want := range []string{"muscle gain", "178 cm", "75.4 kg", "18.2%", "asthma", "at the gym", "barbell, bench"} {
		if !strings.Contains(first, want) {
			t.Fatalf("expected prompt to contain %q:\n%s", want, first)
		}
	}
}

func TestBuildPlanPromptOmitsAbsentOptionals(t *testing.T) {
	prompt := BuildPlanPrompt(models.UserProfile{
		Goal:              models.GoalWeightLoss,
		Height:            165,
		Weight:            70,
		WorkoutPreference: models.WorkoutPreferenceHome,
	})
	if strings.Contains(prompt, "Body fat") || strings.Contains(prompt, "Health conditions") || strings.Contains(prompt, "equipment") {
		t.Fatalf("expected optional lines to be omitted:\n%s", prompt)
	}
	if !strings.Contains(prompt, "at home") {
		t.Fatalf("expected home workout line:\n%s", prompt)
	}
}
