package handlers

import (
	"strings"
	"time"
)

const reservationDateLayout = "2006-01-02"

func validateCreateReservationRequest(req createReservationRequest) string {
	if strings.TrimSpace(req.GymName) == "" {
		return "gymName is required"
	}
	if strings.TrimSpace(req.Equipment) == "" {
		return "equipment is required"
	}
	if strings.TrimSpace(req.Date) == "" {
		return "date is required"
	}
	if _, err := time.Parse(reservationDateLayout, req.Date); err != nil {
		return "date must use the YYYY-MM-DD format"
	}
	if strings.TrimSpace(req.TimeSlot) == "" {
		return "timeSlot is required"
	}
	return ""
}

func validateCreateProgressRequest(req createProgressRequest) string {
	if req.WeightKg <= 0 {
		return "weightKg must be greater than 0"
	}
	if req.BodyFatPct != nil && (*req.BodyFatPct < 0 || *req.BodyFatPct > 100) {
		return "bodyFatPct must be between 0 and 100"
	}
	if req.MuscleMassKg != nil && *req.MuscleMassKg <= 0 {
		return "muscleMassKg must be greater than 0"
	}
	return ""
}

func validateCreateWorkoutLogRequest(req createWorkoutLogRequest) string {
	if strings.TrimSpace(req.WeekLabel) == "" {
		return "weekLabel is required"
	}
	return ""
}
