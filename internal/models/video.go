package models

// VideoResult is one hit from the exercise video search.
type VideoResult struct {
	Title   string `json:"title"`
	Channel string `json:"channel"`
	URL     string `json:"url"`
}
