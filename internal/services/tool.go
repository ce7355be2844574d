package services

import "context"

// ToolParam describes one argument of a tool. Type uses JSON-schema
// names ("string", "integer").
type ToolParam struct {
	Type        string
	Description string
}

type ToolParams struct {
	Properties map[string]ToolParam
	Required   []string
}

// Tool is a named, described function the generative model may invoke
// mid-conversation. Invoke never returns an error: failures are reduced
// to human-readable text handed back to the model, so a broken tool
// degrades a reply instead of aborting the whole chat turn.
type Tool interface {
	Name() string
	Description() string
	Parameters() ToolParams
	Invoke(ctx context.Context, args map[string]any) string
}
