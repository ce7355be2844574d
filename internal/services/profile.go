package services

import (
	"strings"

	"github.com/Jenicoon/fitcoach-backend/internal/models"
)

var allowedWorkoutPreferences = map[string]struct{}{
	models.WorkoutPreferenceHome: {},
	models.WorkoutPreferenceGym:  {},
}

// SanitizeProfile normalizes a raw profile payload and validates it
// against the UserProfile shape. It has no side effects; on failure the
// returned *ValidationError lists every offending field at once.
func SanitizeProfile(raw models.ProfileInput) (models.UserProfile, error) {
	var fields []FieldError

	goal := strings.TrimSpace(raw.Goal)
	if goal == "" {
		goal = models.GoalWeightLoss
	}

	preference := strings.TrimSpace(raw.WorkoutPreference)
	switch preference {
	case "":
		preference = models.WorkoutPreferenceHome
	default:
		if _, ok := allowedWorkoutPreferences[preference]; !ok {
			fields = append(fields, FieldError{
				Field:   "workoutPreference",
				Message: "must be one of: home, gym",
			})
		}
	}

	if raw.Height == nil {
		fields = append(fields, FieldError{Field: "height", Message: "is required"})
	} else if *raw.Height <= 0 {
		fields = append(fields, FieldError{Field: "height", Message: "must be greater than 0"})
	}

	if raw.Weight == nil {
		fields = append(fields, FieldError{Field: "weight", Message: "is required"})
	} else if *raw.Weight <= 0 {
		fields = append(fields, FieldError{Field: "weight", Message: "must be greater than 0"})
	}

	if raw.BodyFat != nil && (*raw.BodyFat < 0 || *raw.BodyFat > 100) {
		fields = append(fields, FieldError{Field: "bodyFat", Message: "must be between 0 and 100"})
	}

	if len(fields) > 0 {
		return models.UserProfile{}, newValidationError(fields...)
	}

	profile := models.UserProfile{
		Goal:              goal,
		Height:            *raw.Height,
		Weight:            *raw.Weight,
		BodyFat:           raw.BodyFat,
		WorkoutPreference: preference,
		HealthConditions:  trimOptional(raw.HealthConditions),
		Equipment:         trimOptional(raw.Equipment),
	}
	return profile, nil
}

// trimOptional collapses empty or whitespace-only optional text to nil.
func trimOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
