package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Jenicoon/fitcoach-backend/internal/models"
)

type stubPlanGenerator struct {
	plan       *models.FitnessPlan
	err        error
	lastPrompt string
}

func (g *stubPlanGenerator) GeneratePlan(_ context.Context, prompt string) (*models.FitnessPlan, error) {
	g.lastPrompt = prompt
	return g.plan, g.err
}

type stubPlanWriter struct {
	err          error
	lastMemberID string
	lastPlan     models.FitnessPlan
	lastTime     time.Time
	calls        int
}

func (w *stubPlanWriter) Upsert(_ context.Context, memberID string, plan models.FitnessPlan, updatedAt time.Time) error {
	w.calls++
	w.lastMemberID = memberID
	w.lastPlan = plan
	w.lastTime = updatedAt
	return w.err
}

func validProfileInput() models.ProfileInput {
	return models.ProfileInput{
		Goal:   models.GoalMuscleGain,
		Height: floatPtr(180),
		Weight: floatPtr(80),
	}
}

func TestGeneratePlanRequiresMemberID(t *testing.T) {
	svc := NewPlanService(&stubPlanGenerator{}, &stubPlanWriter{})
	_, err := svc.GeneratePlan(context.Background(), "", validProfileInput())
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
}

func TestGeneratePlanRejectsBadProfileBeforeModelCall(t *testing.T) {
	generator := &stubPlanGenerator{}
	svc := NewPlanService(generator, &stubPlanWriter{})

	_, err := svc.GeneratePlan(context.Background(), "m-1", models.ProfileInput{BodyFat: floatPtr(150)})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if generator.lastPrompt != "" {
		t.Fatal("expected no model call for an invalid profile")
	}
}

func TestGeneratePlanPersistsAndReturnsPlan(t *testing.T) {
	plan := &models.FitnessPlan{WorkoutPlan: []models.WorkoutDay{{Day: "Monday"}}}
	generator := &stubPlanGenerator{plan: plan}
	writer := &stubPlanWriter{}
	svc := NewPlanService(generator, writer)

	got, err := svc.GeneratePlan(context.Background(), "m-1", validProfileInput())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != plan {
		t.Fatal("expected the generated plan back")
	}
	if writer.calls != 1 || writer.lastMemberID != "m-1" {
		t.Fatalf("expected one upsert for m-1, got %d for %q", writer.calls, writer.lastMemberID)
	}
	if !strings.Contains(generator.lastPrompt, "muscle gain") {
		t.Fatalf("expected sanitized profile in prompt, got %q", generator.lastPrompt)
	}
}

func TestGeneratePlanPropagatesGeneratorError(t *testing.T) {
	genErr := &UpstreamError{Op: "plan generation", Err: errors.New("model unavailable")}
	writer := &stubPlanWriter{}
	svc := NewPlanService(&stubPlanGenerator{err: genErr}, writer)

	_, err := svc.GeneratePlan(context.Background(), "m-1", validProfileInput())
	var uErr *UpstreamError
	if !errors.As(err, &uErr) {
		t.Fatalf("expected *UpstreamError, got %v", err)
	}
	if writer.calls != 0 {
		t.Fatal("expected no upsert after a failed generation")
	}
}

func TestGeneratePlanServesPlanWhenPersistenceFails(t *testing.T) {
	plan := &models.FitnessPlan{WorkoutPlan: []models.WorkoutDay{{Day: "Monday"}}}
	writer := &stubPlanWriter{err: errors.New("connection refused")}
	svc := NewPlanService(&stubPlanGenerator{plan: plan}, writer)

	got, err := svc.GeneratePlan(context.Background(), "m-1", validProfileInput())
	var pErr *PersistenceError
	if !errors.As(err, &pErr) {
		t.Fatalf("expected *PersistenceError, got %v", err)
	}
	if got != plan {
		t.Fatal("expected the plan back despite the failed write")
	}
}
