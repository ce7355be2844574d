package repository

import (
	"context"
	"time"

	"github.com/Jenicoon/fitcoach-backend/internal/models"
)

const reservationDateLayout = "2006-01-02"

type CreateReservationInput struct {
	MemberID  string
	GymName   string
	Equipment string
	Date      string
	TimeSlot  string
}

type ReservationRepository struct {
	db DBTX
}

func NewReservationRepository(db DBTX) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) Create(ctx context.Context, input CreateReservationInput) (*models.Reservation, error) {
	query := `
		INSERT INTO reservations (member_id, gym_name, equipment, reserved_on, time_slot)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, member_id, gym_name, equipment, reserved_on, time_slot, created_at
	`

	return r.scanReservation(r.db.QueryRow(
		ctx,
		query,
		input.MemberID,
		input.GymName,
		input.Equipment,
		input.Date,
		input.TimeSlot,
	))
}

// ListUpcoming returns reservations from today onward ordered by date,
// then time slot.
func (r *ReservationRepository) ListUpcoming(ctx context.Context, memberID string) ([]models.Reservation, error) {
	query := `
		SELECT id, member_id, gym_name, equipment, reserved_on, time_slot, created_at
		FROM reservations
		WHERE member_id = $1 AND reserved_on >= CURRENT_DATE
		ORDER BY reserved_on ASC, time_slot ASC
	`

	rows, err := r.db.Query(ctx, query, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := make([]models.Reservation, 0)
	for rows.Next() {
		var reservation models.Reservation
		var date time.Time
		if err := rows.Scan(
			&reservation.ID,
			&reservation.MemberID,
			&reservation.GymName,
			&reservation.Equipment,
			&date,
			&reservation.TimeSlot,
			&reservation.CreatedAt,
		); err != nil {
			return nil, err
		}
		reservation.Date = date.Format(reservationDateLayout)
		reservations = append(reservations, reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reservations, nil
}

func (r *ReservationRepository) scanReservation(row interface{ Scan(dest ...any) error }) (*models.Reservation, error) {
	var reservation models.Reservation
	var date time.Time
	err := row.Scan(
		&reservation.ID,
		&reservation.MemberID,
		&reservation.GymName,
		&reservation.Equipment,
		&date,
		&reservation.TimeSlot,
		&reservation.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	reservation.Date = date.Format(reservationDateLayout)
	return &reservation, nil
}
