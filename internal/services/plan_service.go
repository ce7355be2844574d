package services

import (
	"context"
	"log"
	"time"

	"github.com/Jenicoon/fitcoach-backend/internal/models"
	"github.com/google/uuid"
)

// PlanGenerator requests a schema-constrained completion from the
// generative collaborator. The returned plan is already validated
// against the plan schema.
type PlanGenerator interface {
	GeneratePlan(ctx context.Context, prompt string) (*models.FitnessPlan, error)
}

type planWriter interface {
	Upsert(ctx context.Context, memberID string, plan models.FitnessPlan, updatedAt time.Time) error
}

type PlanService struct {
	generator PlanGenerator
	plans     planWriter
	now       func() time.Time
}

func NewPlanService(generator PlanGenerator, plans planWriter) *PlanService {
	return &PlanService{
		generator: generator,
		plans:     plans,
		now:       time.Now,
	}
}

// GeneratePlan runs the linear pipeline: sanitize the profile, build the
// prompt, request the completion, persist the result keyed by member id.
// The persistence write is best-effort: when it fails the generated plan
// is still returned alongside a *PersistenceError, and the caller decides
// how loudly to complain. Concurrent runs for one member are not
// serialized; the last write wins.
func (s *PlanService) GeneratePlan(ctx context.Context, memberID string, raw models.ProfileInput) (*models.FitnessPlan, error) {
	if memberID == "" {
		return nil, newValidationError(FieldError{Field: "memberId", Message: "is required"})
	}

	profile, err := SanitizeProfile(raw)
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	prompt := BuildPlanPrompt(profile)

	plan, err := s.generator.GeneratePlan(ctx, prompt)
	if err != nil {
		return nil, err
	}
	log.Printf("plan generation %s: member %s: plan generated", runID, memberID)

	if err := s.plans.Upsert(ctx, memberID, *plan, s.now().UTC()); err != nil {
		log.Printf("plan generation %s: member %s: persistence failed: %v", runID, memberID, err)
		return plan, &PersistenceError{Op: "persist fitness plan", Err: err}
	}

	return plan, nil
}
