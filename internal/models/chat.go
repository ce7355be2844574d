package models

const (
	ChatRoleUser  = "user"
	ChatRoleModel = "model"
)

// ChatMessage is one turn of a coaching conversation. Messages are
// ephemeral; the caller resubmits whatever history it wants kept.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
