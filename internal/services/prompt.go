package services

import (
	"fmt"
	"strings"

	"github.com/Jenicoon/fitcoach-backend/internal/models"
)

var goalLabels = map[string]string{
	models.GoalWeightLoss:     "weight loss",
	models.GoalMuscleGain:     "muscle gain",
	models.GoalRehabilitation: "rehabilitation after injury",
}

var workoutLocationLabels = map[string]string{
	models.WorkoutPreferenceHome: "at home",
	models.WorkoutPreferenceGym:  "at the gym",
}

// BuildPlanPrompt renders a validated profile as the natural-language
// description handed to the model. Pure and deterministic: the same
// profile always yields the same text.
func BuildPlanPrompt(profile models.UserProfile) string {
	goal := goalLabels[profile.Goal]
	if goal == "" {
		goal = profile.Goal
	}

	location := workoutLocationLabels[profile.WorkoutPreference]
	if location == "" {
		location = profile.WorkoutPreference
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Create a personalized 7-day fitness and diet plan for this member.\n")
	fmt.Fprintf(&b, "Primary goal: %s.\n", goal)
	fmt.Fprintf(&b, "Height: %.0f cm. Weight: %.1f kg.\n", profile.Height, profile.Weight)
	if profile.BodyFat != nil {
		fmt.Fprintf(&b, "Body fat: %.1f%%.\n", *profile.BodyFat)
	}
	if profile.HealthConditions != nil {
		fmt.Fprintf(&b, "Health conditions to respect: %s.\n", *profile.HealthConditions)
	}
	fmt.Fprintf(&b, "The member works out %s.\n", location)
	if profile.Equipment != nil {
		fmt.Fprintf(&b, "Available equipment: %s.\n", *profile.Equipment)
	}
	fmt.Fprintf(&b, "Cover all 7 days for both the workout plan and the diet plan.")
	return b.String()
}
