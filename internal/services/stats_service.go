package services

import (
	"context"
	"math"

	"github.com/Jenicoon/fitcoach-backend/internal/models"
)

type progressReader interface {
	ListByMemberID(ctx context.Context, memberID string) ([]models.ProgressEntry, error)
}

type workoutLogReader interface {
	ListByMemberID(ctx context.Context, memberID string) ([]models.WorkoutLogEntry, error)
}

type StatsService struct {
	progress progressReader
	workouts workoutLogReader
}

func NewStatsService(progress progressReader, workouts workoutLogReader) *StatsService {
	return &StatsService{progress: progress, workouts: workouts}
}

// MemberStats loads the member's progress entries (oldest first) and
// workout logs (newest first) and aggregates both.
func (s *StatsService) MemberStats(ctx context.Context, memberID string) (*models.ProgressStatsSummary, error) {
	if memberID == "" {
		return nil, newValidationError(FieldError{Field: "memberId", Message: "is required"})
	}

	entries, err := s.progress.ListByMemberID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	logs, err := s.workouts.ListByMemberID(ctx, memberID)
	if err != nil {
		return nil, err
	}

	return &models.ProgressStatsSummary{
		Progress: BuildProgressSummary(entries),
		Workouts: BuildWorkoutSummary(logs),
	}, nil
}

// BuildProgressSummary aggregates body composition entries ordered
// oldest first. Every field is nil when the slice is empty; the averages
// are nil when no entry carries the respective value.
func BuildProgressSummary(entries []models.ProgressEntry) models.ProgressSummary {
	if len(entries) == 0 {
		return models.ProgressSummary{}
	}

	first := entries[0].WeightKg
	last := entries[len(entries)-1].WeightKg
	delta := round1(last - first)

	return models.ProgressSummary{
		FirstWeight:   f64ptr(round1(first)),
		LastWeight:    f64ptr(round1(last)),
		WeightDelta:   f64ptr(delta),
		AvgBodyFat:    meanOf(entries, func(e models.ProgressEntry) *float64 { return e.BodyFatPct }),
		AvgMuscleMass: meanOf(entries, func(e models.ProgressEntry) *float64 { return e.MuscleMassKg }),
	}
}

// BuildWorkoutSummary aggregates workout logs ordered newest first. The
// streak counts consecutive completed sessions from the top of the list,
// stopping at the first incomplete one; the weekly breakdown preserves
// the order in which each week label first appears.
func BuildWorkoutSummary(logs []models.WorkoutLogEntry) models.WorkoutSummary {
	summary := models.WorkoutSummary{Weekly: []models.WeeklyWorkoutStats{}}
	summary.TotalSessions = len(logs)

	streakBroken := false
	weekIndex := map[string]int{}

	for _, entry := range logs {
		if entry.Completed {
			summary.CompletedSessions++
			if !streakBroken {
				summary.RecentStreak++
			}
		} else {
			streakBroken = true
		}

		idx, ok := weekIndex[entry.WeekLabel]
		if !ok {
			idx = len(summary.Weekly)
			weekIndex[entry.WeekLabel] = idx
			summary.Weekly = append(summary.Weekly, models.WeeklyWorkoutStats{Week: entry.WeekLabel})
		}
		summary.Weekly[idx].Total++
		if entry.Completed {
			summary.Weekly[idx].Completed++
		}
	}

	if summary.TotalSessions > 0 {
		summary.CompletionRate = percentage(summary.CompletedSessions, summary.TotalSessions)
	}
	for i := range summary.Weekly {
		summary.Weekly[i].CompletionRate = percentage(summary.Weekly[i].Completed, summary.Weekly[i].Total)
	}

	return summary
}

func meanOf(entries []models.ProgressEntry, value func(models.ProgressEntry) *float64) *float64 {
	var sum float64
	var count int
	for _, e := range entries {
		if v := value(e); v != nil {
			sum += *v
			count++
		}
	}
	if count == 0 {
		return nil
	}
	return f64ptr(round1(sum / float64(count)))
}

func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return round1(float64(part) / float64(total) * 100)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func f64ptr(v float64) *float64 { return &v }
