package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Jenicoon/fitcoach-backend/internal/models"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const (
	minVideoResults  = 1
	maxVideoResults  = 5
	defaultVideoLang = "en"
)

// VideoSearchService looks up exercise tutorial videos through the
// YouTube Data API.
type VideoSearchService struct {
	yt *youtube.Service
}

func NewVideoSearchService(ctx context.Context, apiKey string) (*VideoSearchService, error) {
	yt, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create youtube client: %w", err)
	}
	return &VideoSearchService{yt: yt}, nil
}

// Search returns up to maxResults video hits for the query. maxResults
// is clamped to [1,5] with 0 meaning the default of 3; an empty lang
// falls back to "en".
func (s *VideoSearchService) Search(ctx context.Context, query string, maxResults int, lang string) ([]models.VideoResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, newValidationError(FieldError{Field: "query", Message: "is required"})
	}
	maxResults = clampVideoResults(maxResults)
	if lang == "" {
		lang = defaultVideoLang
	}

	resp, err := s.yt.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		MaxResults(int64(maxResults)).
		RelevanceLanguage(lang).
		Context(ctx).
		Do()
	if err != nil {
		return nil, &UpstreamError{Op: "video search", Err: err}
	}

	videos := make([]models.VideoResult, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id == nil || item.Id.VideoId == "" || item.Snippet == nil {
			continue
		}
		videos = append(videos, models.VideoResult{
			Title:   item.Snippet.Title,
			Channel: item.Snippet.ChannelTitle,
			URL:     "https://www.youtube.com/watch?v=" + item.Id.VideoId,
		})
	}
	return videos, nil
}

func clampVideoResults(n int) int {
	if n == 0 {
		return defaultVideoResultCount
	}
	if n < minVideoResults {
		return minVideoResults
	}
	if n > maxVideoResults {
		return maxVideoResults
	}
	return n
}
