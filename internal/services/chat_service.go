package services

import (
	"context"
	"strings"

	"github.com/Jenicoon/fitcoach-backend/internal/models"
)

const chatSystemInstruction = "You are an encouraging personal fitness coach for a gym membership app. " +
	"Use the provided tools to look up the member's plan, progress statistics, upcoming " +
	"reservations and exercise videos before answering questions about them. " +
	"Keep answers practical and grounded in the member's own data. " +
	"If a tool reports that data is missing, say so instead of inventing details."

// ChatModel is the generative collaborator behind the coaching chat. An
// implementation runs its own tool-invocation loop and returns the final
// text reply.
type ChatModel interface {
	Complete(ctx context.Context, system string, history []models.ChatMessage, message string, tools []Tool) (string, error)
}

type ChatInput struct {
	MemberID string
	Message  string
	History  []models.ChatMessage
}

type ChatService struct {
	model        ChatModel
	plans        planReader
	stats        statsProvider
	reservations reservationReader
	videos       videoSearcher
}

func NewChatService(
	model ChatModel,
	plans planReader,
	stats statsProvider,
	reservations reservationReader,
	videos videoSearcher,
) *ChatService {
	return &ChatService{
		model:        model,
		plans:        plans,
		stats:        stats,
		reservations: reservations,
		videos:       videos,
	}
}

// Answer runs one coaching chat turn: the fixed system instruction, the
// caller-supplied history, the new user message and the four member-scoped
// tools go to the model; its final reply comes back together with the
// updated message list.
func (s *ChatService) Answer(ctx context.Context, input ChatInput) (string, []models.ChatMessage, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return "", nil, newValidationError(FieldError{Field: "message", Message: "is required"})
	}

	tools := []Tool{
		newMemberPlanTool(input.MemberID, s.plans),
		newMemberStatsTool(input.MemberID, s.stats),
		newReservationsTool(input.MemberID, s.reservations),
		newVideoSearchTool(s.videos),
	}

	reply, err := s.model.Complete(ctx, chatSystemInstruction, input.History, message, tools)
	if err != nil {
		return "", nil, &UpstreamError{Op: "chat completion", Err: err}
	}

	messages := make([]models.ChatMessage, 0, len(input.History)+2)
	messages = append(messages, input.History...)
	messages = append(messages,
		models.ChatMessage{Role: models.ChatRoleUser, Content: message},
		models.ChatMessage{Role: models.ChatRoleModel, Content: reply},
	)
	return reply, messages, nil
}
