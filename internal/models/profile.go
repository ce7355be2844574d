package models

const (
	GoalWeightLoss     = "weightLoss"
	GoalMuscleGain     = "muscleGain"
	GoalRehabilitation = "rehabilitation"

	WorkoutPreferenceHome = "home"
	WorkoutPreferenceGym  = "gym"
)

// ProfileInput is the raw profile payload as submitted by the client.
// Optional fields are pointers so that "absent" and "empty" stay apart
// until the sanitizer normalizes them.
type ProfileInput struct {
	Goal              string   `json:"goal"`
	Height            *float64 `json:"height"`
	Weight            *float64 `json:"weight"`
	BodyFat           *float64 `json:"bodyFat"`
	HealthConditions  *string  `json:"healthConditions"`
	WorkoutPreference string   `json:"workoutPreference"`
	Equipment         *string  `json:"equipment"`
}

// UserProfile is a sanitized, validated profile. Height is in cm and
// weight in kg; optional free-text fields are nil when not provided.
type UserProfile struct {
	Goal              string   `json:"goal"`
	Height            float64  `json:"height"`
	Weight            float64  `json:"weight"`
	BodyFat           *float64 `json:"bodyFat,omitempty"`
	HealthConditions  *string  `json:"healthConditions,omitempty"`
	WorkoutPreference string   `json:"workoutPreference"`
	Equipment         *string  `json:"equipment,omitempty"`
}
