package models

import "time"

// FitnessPlan is the structured output of a plan generation run: a
// seven-day workout plan plus a seven-day diet plan.
type FitnessPlan struct {
	WorkoutPlan []WorkoutDay `json:"workoutPlan"`
	DietPlan    []DietDay    `json:"dietPlan"`
}

type WorkoutDay struct {
	Day       string     `json:"day"`
	Focus     string     `json:"focus"`
	Exercises []Exercise `json:"exercises"`
}

type Exercise struct {
	Name        string `json:"name"`
	Sets        int    `json:"sets"`
	Reps        string `json:"reps"`
	Rest        string `json:"rest"`
	Description string `json:"description"`
}

type DietDay struct {
	Day        string     `json:"day"`
	Breakfast  Meal       `json:"breakfast"`
	Lunch      Meal       `json:"lunch"`
	Dinner     Meal       `json:"dinner"`
	Snack      *Meal      `json:"snack,omitempty"`
	DailyTotal DailyTotal `json:"dailyTotal"`
}

type Meal struct {
	Name        string `json:"name"`
	Calories    int    `json:"calories"`
	Description string `json:"description"`
	Recipe      string `json:"recipe"`
}

// DailyTotal keeps macro values as display strings ("180g", "2200 kcal")
// exactly as the model emits them.
type DailyTotal struct {
	Calories string `json:"calories"`
	Protein  string `json:"protein"`
	Carbs    string `json:"carbs"`
	Fat      string `json:"fat"`
}

// StoredPlan is a persisted plan keyed by member identity.
type StoredPlan struct {
	MemberID  string      `json:"memberId"`
	Plan      FitnessPlan `json:"plan"`
	UpdatedAt time.Time   `json:"updatedAt"`
}
