package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Jenicoon/fitcoach-backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PlanRepository struct {
	db DBTX
}

func NewPlanRepository(db DBTX) *PlanRepository {
	return &PlanRepository{db: db}
}

// Upsert writes the member's plan, replacing any previous one under the
// same key. One row per member, ever; repeated generation runs overwrite
// in place.
func (r *PlanRepository) Upsert(ctx context.Context, memberID string, plan models.FitnessPlan, updatedAt time.Time) error {
	payload, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}

	query := `
		INSERT INTO fitness_plans (member_id, plan, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (member_id)
		DO UPDATE SET plan = EXCLUDED.plan, updated_at = EXCLUDED.updated_at
	`
	_, err = r.db.Exec(ctx, query, memberID, payload, updatedAt)
	return err
}

func (r *PlanRepository) GetByMemberID(ctx context.Context, memberID string) (*models.StoredPlan, error) {
	query := `
		SELECT member_id, plan, updated_at
		FROM fitness_plans
		WHERE member_id = $1
	`

	var payload []byte
	stored := models.StoredPlan{}
	err := r.db.QueryRow(ctx, query, memberID).Scan(
		&stored.MemberID,
		&payload,
		&stored.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(payload, &stored.Plan); err != nil {
		return nil, fmt.Errorf("decode plan: %w", err)
	}
	return &stored, nil
}
