package repository

import (
	"context"
	"testing"
	"time"
)

func TestReservationCreateFormatsDate(t *testing.T) {
	createdAt := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	reservedOn := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	db := &stubDBTX{
		queryRowFn: func(_ context.Context, _ string, _ ...any) stubRow {
			return stubRow{values: []any{
				int64(5), "m-1", "Downtown", "squat rack", reservedOn, "18:00-19:00", createdAt,
			}}
		},
	}
	repo := NewReservationRepository(db)

	reservation, err := repo.Create(context.Background(), CreateReservationInput{
		MemberID:  "m-1",
		GymName:   "Downtown",
		Equipment: "squat rack",
		Date:      "2026-09-01",
		TimeSlot:  "18:00-19:00",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if reservation.ID != 5 || reservation.MemberID != "m-1" {
		t.Fatalf("unexpected reservation %+v", reservation)
	}
	if reservation.Date != "2026-09-01" {
		t.Fatalf("expected formatted date, got %q", reservation.Date)
	}
	if len(db.lastArgs) != 5 || db.lastArgs[3] != "2026-09-01" {
		t.Fatalf("unexpected insert args %v", db.lastArgs)
	}
}
