package models

import "time"

// Reservation is a member's equipment booking. Date is a calendar day
// ("2026-09-01") and TimeSlot a display range ("09:00-10:00"); together
// they define the upcoming-reservation ordering.
type Reservation struct {
	ID        int64     `json:"id"`
	MemberID  string    `json:"memberId"`
	GymName   string    `json:"gymName"`
	Equipment string    `json:"equipment"`
	Date      string    `json:"date"`
	TimeSlot  string    `json:"timeSlot"`
	CreatedAt time.Time `json:"createdAt"`
}
