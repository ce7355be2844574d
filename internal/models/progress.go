package models

import "time"

// ProgressEntry is a member-owned body composition snapshot.
type ProgressEntry struct {
	ID           int64     `json:"id"`
	MemberID     string    `json:"memberId"`
	WeightKg     float64   `json:"weightKg"`
	BodyFatPct   *float64  `json:"bodyFatPct,omitempty"`
	MuscleMassKg *float64  `json:"muscleMassKg,omitempty"`
	RecordedAt   time.Time `json:"recordedAt"`
}

// WorkoutLogEntry records one workout session and whether it was
// completed. WeekLabel is an opaque grouping key ("Week 1", "2026-W35").
type WorkoutLogEntry struct {
	ID        int64     `json:"id"`
	MemberID  string    `json:"memberId"`
	WeekLabel string    `json:"weekLabel"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProgressSummary aggregates body composition history. Every field is
// null when the member has no progress entries.
type ProgressSummary struct {
	FirstWeight   *float64 `json:"firstWeight"`
	LastWeight    *float64 `json:"lastWeight"`
	WeightDelta   *float64 `json:"weightDelta"`
	AvgBodyFat    *float64 `json:"avgBodyFat"`
	AvgMuscleMass *float64 `json:"avgMuscleMass"`
}

type WeeklyWorkoutStats struct {
	Week           string  `json:"week"`
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	CompletionRate float64 `json:"completionRate"`
}

type WorkoutSummary struct {
	TotalSessions     int                  `json:"totalSessions"`
	CompletedSessions int                  `json:"completedSessions"`
	CompletionRate    float64              `json:"completionRate"`
	RecentStreak      int                  `json:"recentStreak"`
	Weekly            []WeeklyWorkoutStats `json:"weekly"`
}

type ProgressStatsSummary struct {
	Progress ProgressSummary `json:"progress"`
	Workouts WorkoutSummary  `json:"workouts"`
}
