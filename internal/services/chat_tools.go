package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/Jenicoon/fitcoach-backend/internal/models"
)

const (
	noPlanSentinel          = "The member has no stored fitness plan yet."
	memberNotFoundSentinel  = "Member not found."
	noReservationsSentinel  = "The member has no upcoming reservations."
	defaultVideoResultCount = 3
)

type planReader interface {
	GetByMemberID(ctx context.Context, memberID string) (*models.StoredPlan, error)
}

type reservationReader interface {
	ListUpcoming(ctx context.Context, memberID string) ([]models.Reservation, error)
}

type statsProvider interface {
	MemberStats(ctx context.Context, memberID string) (*models.ProgressStatsSummary, error)
}

type videoSearcher interface {
	Search(ctx context.Context, query string, maxResults int, lang string) ([]models.VideoResult, error)
}

// memberPlanTool serves the member's persisted plan. The member id is an
// explicit constructor parameter, not ambient state.
type memberPlanTool struct {
	memberID string
	plans    planReader
}

func newMemberPlanTool(memberID string, plans planReader) *memberPlanTool {
	return &memberPlanTool{memberID: memberID, plans: plans}
}

func (t *memberPlanTool) Name() string { return "get_member_plan" }

func (t *memberPlanTool) Description() string {
	return "Returns the member's current 7-day workout and diet plan as JSON."
}

func (t *memberPlanTool) Parameters() ToolParams { return ToolParams{} }

func (t *memberPlanTool) Invoke(ctx context.Context, _ map[string]any) string {
	if t.memberID == "" {
		return noPlanSentinel
	}
	stored, err := t.plans.GetByMemberID(ctx, t.memberID)
	if err != nil || stored == nil {
		return noPlanSentinel
	}
	data, err := json.Marshal(stored.Plan)
	if err != nil {
		log.Printf("plan tool: marshal plan for member %s: %v", t.memberID, err)
		return noPlanSentinel
	}
	return string(data)
}

type memberStatsTool struct {
	memberID string
	stats    statsProvider
}

func newMemberStatsTool(memberID string, stats statsProvider) *memberStatsTool {
	return &memberStatsTool{memberID: memberID, stats: stats}
}

func (t *memberStatsTool) Name() string { return "get_member_progress_stats" }

func (t *memberStatsTool) Description() string {
	return "Returns the member's progress statistics: weight trend, body fat, workout completion and streak."
}

func (t *memberStatsTool) Parameters() ToolParams { return ToolParams{} }

func (t *memberStatsTool) Invoke(ctx context.Context, _ map[string]any) string {
	if t.memberID == "" {
		return memberNotFoundSentinel
	}
	summary, err := t.stats.MemberStats(ctx, t.memberID)
	if err != nil {
		log.Printf("stats tool: member %s: %v", t.memberID, err)
		return memberNotFoundSentinel
	}
	data, err := json.Marshal(summary)
	if err != nil {
		return memberNotFoundSentinel
	}
	return string(data)
}

type reservationsTool struct {
	memberID     string
	reservations reservationReader
}

func newReservationsTool(memberID string, reservations reservationReader) *reservationsTool {
	return &reservationsTool{memberID: memberID, reservations: reservations}
}

func (t *reservationsTool) Name() string { return "get_upcoming_reservations" }

func (t *reservationsTool) Description() string {
	return "Returns the member's upcoming gym equipment reservations, soonest first."
}

func (t *reservationsTool) Parameters() ToolParams { return ToolParams{} }

func (t *reservationsTool) Invoke(ctx context.Context, _ map[string]any) string {
	if t.memberID == "" {
		return noReservationsSentinel
	}
	reservations, err := t.reservations.ListUpcoming(ctx, t.memberID)
	if err != nil {
		log.Printf("reservations tool: member %s: %v", t.memberID, err)
		return noReservationsSentinel
	}
	if len(reservations) == 0 {
		return noReservationsSentinel
	}
	lines := make([]string, 0, len(reservations))
	for _, r := range reservations {
		lines = append(lines, fmt.Sprintf("%s %s — %s at %s", r.Date, r.TimeSlot, r.Equipment, r.GymName))
	}
	return strings.Join(lines, "\n")
}

type videoSearchTool struct {
	videos videoSearcher
}

func newVideoSearchTool(videos videoSearcher) *videoSearchTool {
	return &videoSearchTool{videos: videos}
}

func (t *videoSearchTool) Name() string { return "search_exercise_videos" }

func (t *videoSearchTool) Description() string {
	return "Searches for exercise tutorial videos and returns title, channel and URL for each result."
}

func (t *videoSearchTool) Parameters() ToolParams {
	return ToolParams{
		Properties: map[string]ToolParam{
			"query": {
				Type:        "string",
				Description: "Free-text search, e.g. an exercise name",
			},
			"maxResults": {
				Type:        "integer",
				Description: "Number of results to return, between 1 and 5 (default 3)",
			},
			"lang": {
				Type:        "string",
				Description: "Two-letter language code for results (default en)",
			},
		},
		Required: []string{"query"},
	}
}

func (t *videoSearchTool) Invoke(ctx context.Context, args map[string]any) string {
	query, _ := args["query"].(string)
	if strings.TrimSpace(query) == "" {
		return "Video search failed: no query was provided."
	}

	maxResults := defaultVideoResultCount
	// Gemini delivers numeric arguments as float64.
	if n, ok := args["maxResults"].(float64); ok {
		maxResults = int(n)
	}
	lang, _ := args["lang"].(string)

	videos, err := t.videos.Search(ctx, query, maxResults, lang)
	if err != nil {
		log.Printf("video tool: query %q: %v", query, err)
		return fmt.Sprintf("Video search failed: %v", err)
	}
	if len(videos) == 0 {
		return fmt.Sprintf("No videos found for %q.", query)
	}

	lines := make([]string, 0, len(videos))
	for _, v := range videos {
		lines = append(lines, fmt.Sprintf("%s — %s — %s", v.Title, v.Channel, v.URL))
	}
	return strings.Join(lines, "\n")
}
