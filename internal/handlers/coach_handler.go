package handlers

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/Jenicoon/fitcoach-backend/internal/models"
	"github.com/Jenicoon/fitcoach-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type planGenerationService interface {
	GeneratePlan(ctx context.Context, memberID string, raw models.ProfileInput) (*models.FitnessPlan, error)
}

type coachChatService interface {
	Answer(ctx context.Context, input services.ChatInput) (string, []models.ChatMessage, error)
}

type memberStatsService interface {
	MemberStats(ctx context.Context, memberID string) (*models.ProgressStatsSummary, error)
}

type videoSearchService interface {
	Search(ctx context.Context, query string, maxResults int, lang string) ([]models.VideoResult, error)
}

type CoachHandler struct {
	plans  planGenerationService
	chat   coachChatService
	stats  memberStatsService
	videos videoSearchService
}

func NewCoachHandler(
	plans planGenerationService,
	chat coachChatService,
	stats memberStatsService,
	videos videoSearchService,
) *CoachHandler {
	return &CoachHandler{
		plans:  plans,
		chat:   chat,
		stats:  stats,
		videos: videos,
	}
}

type generatePlanRequest struct {
	MemberID string              `json:"memberId"`
	Profile  models.ProfileInput `json:"profile"`
}

func (h *CoachHandler) GeneratePlan(c *fiber.Ctx) error {
	var req generatePlanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	memberID := resolveMemberID(c, req.MemberID)

	plan, err := h.plans.GeneratePlan(c.Context(), memberID, req.Profile)
	if err != nil {
		var persistErr *services.PersistenceError
		if errors.As(err, &persistErr) && plan != nil {
			// Serve now, persist best-effort: the member gets the plan,
			// the write failure goes to the log.
			log.Printf("generate-plan: member %s: %v", memberID, persistErr)
			return c.JSON(fiber.Map{"plan": plan})
		}
		return mapCoachError(c, err)
	}

	return c.JSON(fiber.Map{"plan": plan})
}

type chatRequest struct {
	MemberID string               `json:"memberId"`
	Message  string               `json:"message"`
	History  []models.ChatMessage `json:"history"`
}

func (h *CoachHandler) Chat(c *fiber.Ctx) error {
	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	reply, messages, err := h.chat.Answer(c.Context(), services.ChatInput{
		MemberID: resolveMemberID(c, req.MemberID),
		Message:  req.Message,
		History:  req.History,
	})
	if err != nil {
		return mapCoachError(c, err)
	}

	return c.JSON(fiber.Map{
		"reply":    reply,
		"messages": messages,
	})
}

func (h *CoachHandler) MemberStats(c *fiber.Ctx) error {
	memberID := strings.TrimSpace(c.Params("memberId"))
	if memberID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "memberId is required"})
	}

	stats, err := h.stats.MemberStats(c.Context(), memberID)
	if err != nil {
		return mapCoachError(c, err)
	}

	return c.JSON(fiber.Map{"stats": stats})
}

func (h *CoachHandler) SearchVideos(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "q is required"})
	}

	maxResults := 0
	if raw := c.Query("maxResults"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "maxResults must be an integer"})
		}
		maxResults = parsed
	}

	videos, err := h.videos.Search(c.Context(), query, maxResults, c.Query("lang"))
	if err != nil {
		return mapCoachError(c, err)
	}

	return c.JSON(fiber.Map{"videos": videos})
}

// resolveMemberID prefers the explicit payload value and falls back to
// the identity the optional auth middleware placed in locals.
func resolveMemberID(c *fiber.Ctx, explicit string) string {
	if trimmed := strings.TrimSpace(explicit); trimmed != "" {
		return trimmed
	}
	if fromToken, ok := c.Locals("member_id").(string); ok {
		return fromToken
	}
	return ""
}

func mapCoachError(c *fiber.Ctx, err error) error {
	var validationErr *services.ValidationError
	var upstreamErr *services.UpstreamError

	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr.Error()})
	case errors.As(err, &upstreamErr):
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": upstreamErr.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process request"})
	}
}
