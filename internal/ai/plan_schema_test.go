package ai

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Jenicoon/fitcoach-backend/internal/models"
	"github.com/google/generative-ai-go/genai"
)

func validTestPlan() *models.FitnessPlan {
	plan := &models.FitnessPlan{}
	for i := 0; i < planDays; i++ {
		day := fmt.Sprintf("Day %d", i+1)
		plan.WorkoutPlan = append(plan.WorkoutPlan, models.WorkoutDay{
			Day:   day,
			Focus: "Full body",
			Exercises: []models.Exercise{
				{Name: "Squat", Sets: 3, Reps: "10-12", Rest: "60s", Description: "Bodyweight squat"},
			},
		})
		plan.DietPlan = append(plan.DietPlan, models.DietDay{
			Day:       day,
			Breakfast: models.Meal{Name: "Oatmeal", Calories: 350},
			Lunch:     models.Meal{Name: "Chicken salad", Calories: 500},
			Dinner:    models.Meal{Name: "Salmon and rice", Calories: 600},
			DailyTotal: models.DailyTotal{
				Calories: "1450 kcal", Protein: "110g", Carbs: "140g", Fat: "45g",
			},
		})
	}
	return plan
}

func TestValidatePlanAcceptsFullWeek(t *testing.T) {
	if err := ValidatePlan(validTestPlan()); err != nil {
		t.Fatalf("expected valid plan, got %v", err)
	}
}

func TestValidatePlanAcceptsOptionalSnack(t *testing.T) {
	plan := validTestPlan()
	plan.DietPlan[0].Snack = &models.Meal{Name: "Greek yogurt", Calories: 150}
	if err := ValidatePlan(plan); err != nil {
		t.Fatalf("expected valid plan with snack, got %v", err)
	}
}

func TestValidatePlanRejectsNil(t *testing.T) {
	if err := ValidatePlan(nil); err == nil {
		t.Fatal("expected error for nil plan")
	}
}

func TestValidatePlanRejectsWrongDayCount(t *testing.T) {
	plan := validTestPlan()
	plan.WorkoutPlan = plan.WorkoutPlan[:5]
	err := ValidatePlan(plan)
	if err == nil || !strings.Contains(err.Error(), "workoutPlan") {
		t.Fatalf("expected workoutPlan day count error, got %v", err)
	}

	plan = validTestPlan()
	plan.DietPlan = nil
	err = ValidatePlan(plan)
	if err == nil || !strings.Contains(err.Error(), "dietPlan") {
		t.Fatalf("expected dietPlan day count error, got %v", err)
	}
}

func TestValidatePlanRejectsEmptyExercises(t *testing.T) {
	plan := validTestPlan()
	plan.WorkoutPlan[2].Exercises = nil
	err := ValidatePlan(plan)
	if err == nil || !strings.Contains(err.Error(), "no exercises") {
		t.Fatalf("expected empty-exercises error, got %v", err)
	}
}

func TestValidatePlanRejectsUnnamedExercise(t *testing.T) {
	plan := validTestPlan()
	plan.WorkoutPlan[0].Exercises[0].Name = ""
	if err := ValidatePlan(plan); err == nil {
		t.Fatal("expected unnamed-exercise error")
	}
}

func TestValidatePlanRejectsUnnamedMeal(t *testing.T) {
	plan := validTestPlan()
	plan.DietPlan[3].Lunch.Name = ""
	err := ValidatePlan(plan)
	if err == nil || !strings.Contains(err.Error(), "lunch") {
		t.Fatalf("expected unnamed-lunch error, got %v", err)
	}
}

func TestValidatePlanRejectsNegativeCalories(t *testing.T) {
	plan := validTestPlan()
	plan.DietPlan[1].Dinner.Calories = -100
	err := ValidatePlan(plan)
	if err == nil || !strings.Contains(err.Error(), "negative calories") {
		t.Fatalf("expected negative-calories error, got %v", err)
	}
}

func TestPlanResponseSchemaShape(t *testing.T) {
	schema := planResponseSchema()
	if schema.Type != genai.TypeObject {
		t.Fatalf("expected object root, got %v", schema.Type)
	}
	workout, ok := schema.Properties["workoutPlan"]
	if !ok || workout.Type != genai.TypeArray {
		t.Fatal("expected workoutPlan array property")
	}
	diet, ok := schema.Properties["dietPlan"]
	if !ok || diet.Type != genai.TypeArray {
		t.Fatal("expected dietPlan array property")
	}
	dayRequired := diet.Items.Required
	for _, want := range []string{"breakfast", "lunch", "dinner", "dailyTotal"} {
		found := false
		for _, r := range dayRequired {
			if r == want {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected diet day to require %q, got %v", want, dayRequired)
		}
	}
	// Snack stays optional.
	for _, r := range dayRequired {
		if r == "snack" {
			t.Fatal("snack must not be required")
		}
	}
}
