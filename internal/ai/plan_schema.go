package ai

import (
	"fmt"

	"github.com/Jenicoon/fitcoach-backend/internal/models"
	"github.com/google/generative-ai-go/genai"
)

// planDays is how many entries each of the two plans must carry.
const planDays = 7

// planResponseSchema is the wire-format contract sent to the model. It
// and ValidatePlan below are the two consumers of one schema: keep them
// in lockstep when the plan shape changes.
func planResponseSchema() *genai.Schema {
	exerciseSchema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":        {Type: genai.TypeString},
			"sets":        {Type: genai.TypeInteger},
			"reps":        {Type: genai.TypeString, Description: "Repetitions as display text, e.g. \"10-12\""},
			"rest":        {Type: genai.TypeString, Description: "Rest between sets as display text, e.g. \"60s\""},
			"description": {Type: genai.TypeString},
		},
		Required: []string{"name", "sets", "reps", "rest", "description"},
	}

	mealSchema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":        {Type: genai.TypeString},
			"calories":    {Type: genai.TypeInteger},
			"description": {Type: genai.TypeString},
			"recipe":      {Type: genai.TypeString},
		},
		Required: []string{"name", "calories", "description", "recipe"},
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"workoutPlan": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"day":       {Type: genai.TypeString},
						"focus":     {Type: genai.TypeString},
						"exercises": {Type: genai.TypeArray, Items: exerciseSchema},
					},
					Required: []string{"day", "focus", "exercises"},
				},
			},
			"dietPlan": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"day":       {Type: genai.TypeString},
						"breakfast": mealSchema,
						"lunch":     mealSchema,
						"dinner":    mealSchema,
						"snack":     mealSchema,
						"dailyTotal": {
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"calories": {Type: genai.TypeString},
								"protein":  {Type: genai.TypeString},
								"carbs":    {Type: genai.TypeString},
								"fat":      {Type: genai.TypeString},
							},
							Required: []string{"calories", "protein", "carbs", "fat"},
						},
					},
					Required: []string{"day", "breakfast", "lunch", "dinner", "dailyTotal"},
				},
			},
		},
		Required: []string{"workoutPlan", "dietPlan"},
	}
}

// ValidatePlan enforces the plan invariants on a decoded completion:
// both plans present, each workout day carries at least one exercise,
// meal calories are non-negative.
func ValidatePlan(plan *models.FitnessPlan) error {
	if plan == nil {
		return fmt.Errorf("plan is empty")
	}
	if len(plan.WorkoutPlan) != planDays {
		return fmt.Errorf("workoutPlan must contain %d days, got %d", planDays, len(plan.WorkoutPlan))
	}
	if len(plan.DietPlan) != planDays {
		return fmt.Errorf("dietPlan must contain %d days, got %d", planDays, len(plan.DietPlan))
	}

	for i, day := range plan.WorkoutPlan {
		if len(day.Exercises) == 0 {
			return fmt.Errorf("workoutPlan day %d (%s) has no exercises", i+1, day.Day)
		}
		for _, exercise := range day.Exercises {
			if exercise.Name == "" {
				return fmt.Errorf("workoutPlan day %d (%s) has an unnamed exercise", i+1, day.Day)
			}
		}
	}

	for i, day := range plan.DietPlan {
		meals := map[string]models.Meal{
			"breakfast": day.Breakfast,
			"lunch":     day.Lunch,
			"dinner":    day.Dinner,
		}
		if day.Snack != nil {
			meals["snack"] = *day.Snack
		}
		for slot, meal := range meals {
			if meal.Name == "" {
				return fmt.Errorf("dietPlan day %d (%s): %s has no name", i+1, day.Day, slot)
			}
			if meal.Calories < 0 {
				return fmt.Errorf("dietPlan day %d (%s): %s has negative calories", i+1, day.Day, slot)
			}
		}
	}

	return nil
}
