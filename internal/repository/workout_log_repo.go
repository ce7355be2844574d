package repository

import (
	"context"

	"github.com/Jenicoon/fitcoach-backend/internal/models"
)

type CreateWorkoutLogInput struct {
	MemberID  string
	WeekLabel string
	Completed bool
}

type WorkoutLogRepository struct {
	db DBTX
}

func NewWorkoutLogRepository(db DBTX) *WorkoutLogRepository {
	return &WorkoutLogRepository{db: db}
}

func (r *WorkoutLogRepository) Create(ctx context.Context, input CreateWorkoutLogInput) (*models.WorkoutLogEntry, error) {
	query := `
		INSERT INTO workout_logs (member_id, week_label, completed)
		VALUES ($1, $2, $3)
		RETURNING id, member_id, week_label, completed, created_at
	`

	var entry models.WorkoutLogEntry
	err := r.db.QueryRow(
		ctx,
		query,
		input.MemberID,
		input.WeekLabel,
		input.Completed,
	).Scan(
		&entry.ID,
		&entry.MemberID,
		&entry.WeekLabel,
		&entry.Completed,
		&entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &entry, nil
}

// ListByMemberID returns logs newest first, the order the streak
// calculation walks.
func (r *WorkoutLogRepository) ListByMemberID(ctx context.Context, memberID string) ([]models.WorkoutLogEntry, error) {
	query := `
		SELECT id, member_id, week_label, completed, created_at
		FROM workout_logs
		WHERE member_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]models.WorkoutLogEntry, 0)
	for rows.Next() {
		var entry models.WorkoutLogEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.MemberID,
			&entry.WeekLabel,
			&entry.Completed,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		logs = append(logs, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return logs, nil
}
