package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Jenicoon/fitcoach-backend/internal/models"
	"github.com/Jenicoon/fitcoach-backend/internal/services"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	DefaultModelName = "gemini-1.5-flash-latest"

	planSystemInstruction = "You are a certified fitness and nutrition coach. " +
		"Produce a complete 7-day workout plan and 7-day diet plan for the member described by the user. " +
		"Every workout day must list at least one exercise; every diet day must include breakfast, lunch, " +
		"dinner and a daily nutrition total. Respond with JSON matching the requested schema and nothing else."
)

// Client wraps the Gemini SDK for the two orchestration pipelines. It is
// constructed once at startup and injected into the services that need
// it; nothing here is a process-global.
type Client struct {
	genai     *genai.Client
	modelName string
}

func NewClient(ctx context.Context, apiKey, modelName string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	if modelName == "" {
		modelName = DefaultModelName
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Client{genai: client, modelName: modelName}, nil
}

func (c *Client) Close() error {
	return c.genai.Close()
}

// GeneratePlan requests a completion constrained to the fitness plan
// schema and validates the decoded result against the same schema's
// invariants. Any transport failure, undecodable payload or invariant
// violation surfaces as an upstream error; there are no retries here.
func (c *Client) GeneratePlan(ctx context.Context, prompt string) (*models.FitnessPlan, error) {
	model := c.genai.GenerativeModel(c.modelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(planSystemInstruction)},
	}
	model.GenerationConfig = genai.GenerationConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   planResponseSchema(),
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, &services.UpstreamError{Op: "plan generation", Err: err}
	}

	text := flattenText(resp)
	if text == "" {
		return nil, &services.UpstreamError{Op: "plan generation", Err: errors.New("model returned no text content")}
	}

	var plan models.FitnessPlan
	if err := json.Unmarshal([]byte(text), &plan); err != nil {
		return nil, &services.UpstreamError{Op: "plan generation", Err: fmt.Errorf("decode plan: %w", err)}
	}
	if err := ValidatePlan(&plan); err != nil {
		return nil, &services.UpstreamError{Op: "plan generation", Err: err}
	}
	return &plan, nil
}

// Complete runs one chat turn with tool calling. The model may request
// any number of tool invocations; each one is executed and fed back as a
// function response until the model settles on a text reply. Tool output
// is passed through untouched.
func (c *Client) Complete(
	ctx context.Context,
	system string,
	history []models.ChatMessage,
	message string,
	tools []services.Tool,
) (string, error) {
	model := c.genai.GenerativeModel(c.modelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(system)},
	}
	model.Tools = declareTools(tools)

	session := model.StartChat()
	session.History = toGenaiHistory(history)

	resp, err := session.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return "", fmt.Errorf("send message: %w", err)
	}

	for {
		calls := functionCalls(resp)
		if len(calls) == 0 {
			break
		}
		replies := make([]genai.Part, 0, len(calls))
		for _, call := range calls {
			replies = append(replies, genai.FunctionResponse{
				Name:     call.Name,
				Response: map[string]any{"output": invokeTool(ctx, tools, call)},
			})
		}
		resp, err = session.SendMessage(ctx, replies...)
		if err != nil {
			return "", fmt.Errorf("send tool responses: %w", err)
		}
	}

	return flattenText(resp), nil
}

func invokeTool(ctx context.Context, tools []services.Tool, call genai.FunctionCall) string {
	for _, tool := range tools {
		if tool.Name() == call.Name {
			return tool.Invoke(ctx, call.Args)
		}
	}
	return fmt.Sprintf("Unknown tool %q.", call.Name)
}

func declareTools(tools []services.Tool) []*genai.Tool {
	if len(tools) == 0 {
		return nil
	}
	declarations := make([]*genai.FunctionDeclaration, 0, len(tools))
	for _, tool := range tools {
		declarations = append(declarations, &genai.FunctionDeclaration{
			Name:        tool.Name(),
			Description: tool.Description(),
			Parameters:  toGenaiSchema(tool.Parameters()),
		})
	}
	return []*genai.Tool{{FunctionDeclarations: declarations}}
}

func toGenaiSchema(params services.ToolParams) *genai.Schema {
	if len(params.Properties) == 0 {
		return nil
	}
	properties := make(map[string]*genai.Schema, len(params.Properties))
	for name, param := range params.Properties {
		properties[name] = &genai.Schema{
			Type:        schemaType(param.Type),
			Description: param.Description,
		}
	}
	return &genai.Schema{
		Type:       genai.TypeObject,
		Properties: properties,
		Required:   params.Required,
	}
}

func schemaType(name string) genai.Type {
	switch name {
	case "integer":
		return genai.TypeInteger
	case "number":
		return genai.TypeNumber
	case "boolean":
		return genai.TypeBoolean
	default:
		return genai.TypeString
	}
}

func toGenaiHistory(history []models.ChatMessage) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		role := "user"
		if msg.Role == models.ChatRoleModel {
			role = "model"
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}
	return contents
}

// flattenText joins every text part of the first candidate with
// newlines. Non-text parts are skipped.
func flattenText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var parts []string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	return strings.Join(parts, "\n")
}

func functionCalls(resp *genai.GenerateContentResponse) []genai.FunctionCall {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil
	}
	var calls []genai.FunctionCall
	for _, part := range resp.Candidates[0].Content.Parts {
		if call, ok := part.(genai.FunctionCall); ok {
			calls = append(calls, call)
		}
	}
	return calls
}
