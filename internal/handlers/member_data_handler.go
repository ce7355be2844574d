package handlers

import (
	"context"
	"strings"

	"github.com/Jenicoon/fitcoach-backend/internal/models"
	"github.com/Jenicoon/fitcoach-backend/internal/repository"
	"github.com/gofiber/fiber/v2"
)

type reservationStore interface {
	Create(ctx context.Context, input repository.CreateReservationInput) (*models.Reservation, error)
	ListUpcoming(ctx context.Context, memberID string) ([]models.Reservation, error)
}

type progressStore interface {
	Create(ctx context.Context, input repository.CreateProgressEntryInput) (*models.ProgressEntry, error)
	ListByMemberID(ctx context.Context, memberID string) ([]models.ProgressEntry, error)
}

type workoutLogStore interface {
	Create(ctx context.Context, input repository.CreateWorkoutLogInput) (*models.WorkoutLogEntry, error)
	ListByMemberID(ctx context.Context, memberID string) ([]models.WorkoutLogEntry, error)
}

// MemberDataHandler owns the CRUD surface for the member-scoped records
// the coaching tools read back: reservations, progress entries and
// workout logs.
type MemberDataHandler struct {
	reservations reservationStore
	progress     progressStore
	workouts     workoutLogStore
}

func NewMemberDataHandler(
	reservations reservationStore,
	progress progressStore,
	workouts workoutLogStore,
) *MemberDataHandler {
	return &MemberDataHandler{
		reservations: reservations,
		progress:     progress,
		workouts:     workouts,
	}
}

type createReservationRequest struct {
	GymName   string `json:"gymName"`
	Equipment string `json:"equipment"`
	Date      string `json:"date"`
	TimeSlot  string `json:"timeSlot"`
}

func (h *MemberDataHandler) CreateReservation(c *fiber.Ctx) error {
	memberID := strings.TrimSpace(c.Params("memberId"))
	if memberID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "memberId is required"})
	}

	var req createReservationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if validationErr := validateCreateReservationRequest(req); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	reservation, err := h.reservations.Create(c.Context(), repository.CreateReservationInput{
		MemberID:  memberID,
		GymName:   strings.TrimSpace(req.GymName),
		Equipment: strings.TrimSpace(req.Equipment),
		Date:      req.Date,
		TimeSlot:  strings.TrimSpace(req.TimeSlot),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create reservation"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"reservation": reservation})
}

func (h *MemberDataHandler) ListReservations(c *fiber.Ctx) error {
	memberID := strings.TrimSpace(c.Params("memberId"))
	if memberID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "memberId is required"})
	}

	reservations, err := h.reservations.ListUpcoming(c.Context(), memberID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list reservations"})
	}

	return c.JSON(fiber.Map{"reservations": reservations})
}

type createProgressRequest struct {
	WeightKg     float64  `json:"weightKg"`
	BodyFatPct   *float64 `json:"bodyFatPct"`
	MuscleMassKg *float64 `json:"muscleMassKg"`
}

func (h *MemberDataHandler) CreateProgressEntry(c *fiber.Ctx) error {
	memberID := strings.TrimSpace(c.Params("memberId"))
	if memberID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "memberId is required"})
	}

	var req createProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if validationErr := validateCreateProgressRequest(req); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	entry, err := h.progress.Create(c.Context(), repository.CreateProgressEntryInput{
		MemberID:     memberID,
		WeightKg:     req.WeightKg,
		BodyFatPct:   req.BodyFatPct,
		MuscleMassKg: req.MuscleMassKg,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record progress"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"entry": entry})
}

func (h *MemberDataHandler) ListProgressEntries(c *fiber.Ctx) error {
	memberID := strings.TrimSpace(c.Params("memberId"))
	if memberID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "memberId is required"})
	}

	entries, err := h.progress.ListByMemberID(c.Context(), memberID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list progress entries"})
	}

	return c.JSON(fiber.Map{"entries": entries})
}

type createWorkoutLogRequest struct {
	WeekLabel string `json:"weekLabel"`
	Completed bool   `json:"completed"`
}

func (h *MemberDataHandler) CreateWorkoutLog(c *fiber.Ctx) error {
	memberID := strings.TrimSpace(c.Params("memberId"))
	if memberID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "memberId is required"})
	}

	var req createWorkoutLogRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if validationErr := validateCreateWorkoutLogRequest(req); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	entry, err := h.workouts.Create(c.Context(), repository.CreateWorkoutLogInput{
		MemberID:  memberID,
		WeekLabel: strings.TrimSpace(req.WeekLabel),
		Completed: req.Completed,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record workout"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"log": entry})
}

func (h *MemberDataHandler) ListWorkoutLogs(c *fiber.Ctx) error {
	memberID := strings.TrimSpace(c.Params("memberId"))
	if memberID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "memberId is required"})
	}

	logs, err := h.workouts.ListByMemberID(c.Context(), memberID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list workout logs"})
	}

	return c.JSON(fiber.Map{"logs": logs})
}
