package repository

import (
	"context"

	"github.com/Jenicoon/fitcoach-backend/internal/models"
)

type CreateProgressEntryInput struct {
	MemberID     string
	WeightKg     float64
	BodyFatPct   *float64
	MuscleMassKg *float64
}

type ProgressRepository struct {
	db DBTX
}

func NewProgressRepository(db DBTX) *ProgressRepository {
	return &ProgressRepository{db: db}
}

func (r *ProgressRepository) Create(ctx context.Context, input CreateProgressEntryInput) (*models.ProgressEntry, error) {
	query := `
		INSERT INTO progress_entries (member_id, weight_kg, body_fat_pct, muscle_mass_kg)
		VALUES ($1, $2, $3, $4)
		RETURNING id, member_id, weight_kg, body_fat_pct, muscle_mass_kg, recorded_at
	`

	var entry models.ProgressEntry
	err := r.db.QueryRow(
		ctx,
		query,
		input.MemberID,
		input.WeightKg,
		input.BodyFatPct,
		input.MuscleMassKg,
	).Scan(
		&entry.ID,
		&entry.MemberID,
		&entry.WeightKg,
		&entry.BodyFatPct,
		&entry.MuscleMassKg,
		&entry.RecordedAt,
	)
	if err != nil {
		return nil, err
	}

	return &entry, nil
}

// ListByMemberID returns entries oldest first, the order the aggregator
// expects for first/last weight comparisons.
func (r *ProgressRepository) ListByMemberID(ctx context.Context, memberID string) ([]models.ProgressEntry, error) {
	query := `
		SELECT id, member_id, weight_kg, body_fat_pct, muscle_mass_kg, recorded_at
		FROM progress_entries
		WHERE member_id = $1
		ORDER BY recorded_at ASC, id ASC
	`

	rows, err := r.db.Query(ctx, query, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.ProgressEntry, 0)
	for rows.Next() {
		var entry models.ProgressEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.MemberID,
			&entry.WeightKg,
			&entry.BodyFatPct,
			&entry.MuscleMassKg,
			&entry.RecordedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
