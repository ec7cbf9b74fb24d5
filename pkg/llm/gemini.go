package llm

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// GeminiAdapter implements Adapter over the Gemini API. It is the typed
// function-call family: tool calls and responses are structured parts.
type GeminiAdapter struct {
	client *genai.Client
}

// NewGeminiAdapter creates an adapter from an API key.
func NewGeminiAdapter(ctx context.Context, apiKey string) (*GeminiAdapter, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: missing api key", ErrProviderAuth)
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	return &GeminiAdapter{client: client}, nil
}

// CreateMessage issues a non-streaming generation.
func (a *GeminiAdapter) CreateMessage(ctx context.Context, req Request) (*Response, error) {
	contents, config, err := geminiRequest(req)
	if err != nil {
		return nil, err
	}
	resp, err := a.client.Models.GenerateContent(ctx, req.Model, contents, config)
	if err != nil {
		return nil, classifyGeminiError(err)
	}
	return geminiResponse(resp)
}

// StreamMessage streams text deltas and finishes with the aggregated
// response.
func (a *GeminiAdapter) StreamMessage(ctx context.Context, req Request) (<-chan StreamEvent, error) {
	contents, config, err := geminiRequest(req)
	if err != nil {
		return nil, err
	}
	events := make(chan StreamEvent, 16)
	go func() {
		defer close(events)
		final := &Response{}
		for chunk, err := range a.client.Models.GenerateContentStream(ctx, req.Model, contents, config) {
			if err != nil {
				events <- StreamEvent{Type: StreamEventResponse, Err: classifyGeminiError(err)}
				return
			}
			if chunk.UsageMetadata != nil {
				final.Usage = TokenUsage{
					InputTokens:  int(chunk.UsageMetadata.PromptTokenCount),
					OutputTokens: int(chunk.UsageMetadata.CandidatesTokenCount),
				}
			}
			if len(chunk.Candidates) == 0 || chunk.Candidates[0].Content == nil {
				continue
			}
			candidate := chunk.Candidates[0]
			if candidate.FinishReason != "" {
				final.StopReason = string(candidate.FinishReason)
			}
			for _, part := range candidate.Content.Parts {
				if part.Text != "" {
					final.TextBlocks = append(final.TextBlocks, part.Text)
					select {
					case events <- StreamEvent{Type: StreamEventText, Text: part.Text}:
					case <-ctx.Done():
						events <- StreamEvent{Type: StreamEventResponse, Err: ctx.Err()}
						return
					}
				}
				if part.FunctionCall != nil {
					final.ToolUseBlocks = append(final.ToolUseBlocks, ToolUseBlock{
						ID:    part.FunctionCall.ID,
						Name:  part.FunctionCall.Name,
						Input: part.FunctionCall.Args,
					})
				}
			}
		}
		events <- StreamEvent{Type: StreamEventResponse, Response: final}
	}()
	return events, nil
}

func geminiRequest(req Request) ([]*genai.Content, *genai.GenerateContentConfig, error) {
	if req.Model == "" {
		return nil, nil, fmt.Errorf("%w: model is required", ErrProviderInvalidRequest)
	}

	var contents []*genai.Content
	for _, m := range req.Messages {
		var parts []*genai.Part
		if m.Text != "" {
			parts = append(parts, &genai.Part{Text: m.Text})
		}
		for _, tu := range m.ToolUses {
			parts = append(parts, &genai.Part{
				FunctionCall: &genai.FunctionCall{ID: tu.ID, Name: tu.Name, Args: tu.Input},
			})
		}
		for _, tr := range m.ToolResults {
			parts = append(parts, &genai.Part{
				FunctionResponse: &genai.FunctionResponse{
					ID:       tr.ToolUseID,
					Name:     tr.Name,
					Response: map[string]any{"result": tr.Content},
				},
			})
		}
		if len(parts) == 0 {
			continue
		}
		role := "user"
		if m.Role == RoleAssistant {
			role = "model"
		}
		contents = append(contents, &genai.Content{Role: role, Parts: parts})
	}
	if len(contents) == 0 {
		return nil, nil, fmt.Errorf("%w: at least one message is required", ErrProviderInvalidRequest)
	}

	config := &genai.GenerateContentConfig{}
	if req.System != "" {
		config.SystemInstruction = &genai.Content{
			Role:  "user",
			Parts: []*genai.Part{{Text: req.System}},
		}
	}
	if req.MaxTokens > 0 {
		config.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.Temperature > 0 {
		config.Temperature = genai.Ptr(float32(req.Temperature))
	}
	for _, def := range req.Tools {
		config.Tools = append(config.Tools, &genai.Tool{
			FunctionDeclarations: []*genai.FunctionDeclaration{{
				Name:        def.Name,
				Description: def.Description,
				Parameters:  toGeminiSchema(def.InputSchema),
			}},
		})
	}
	return contents, config, nil
}

// toGeminiSchema converts a JSON schema object to the typed genai schema.
func toGeminiSchema(schema map[string]any) *genai.Schema {
	if schema == nil {
		return nil
	}
	s := &genai.Schema{}
	if t, ok := schema["type"].(string); ok {
		s.Type = genai.Type(t)
	}
	if desc, ok := schema["description"].(string); ok {
		s.Description = desc
	}
	if props, ok := schema["properties"].(map[string]any); ok {
		s.Properties = make(map[string]*genai.Schema, len(props))
		for name, prop := range props {
			if propMap, ok := prop.(map[string]any); ok {
				s.Properties[name] = toGeminiSchema(propMap)
			}
		}
	}
	if required, ok := schema["required"].([]any); ok {
		for _, r := range required {
			if rs, ok := r.(string); ok {
				s.Required = append(s.Required, rs)
			}
		}
	}
	if items, ok := schema["items"].(map[string]any); ok {
		s.Items = toGeminiSchema(items)
	}
	if enum, ok := schema["enum"].([]any); ok {
		for _, e := range enum {
			if es, ok := e.(string); ok {
				s.Enum = append(s.Enum, es)
			}
		}
	}
	return s
}

func geminiResponse(resp *genai.GenerateContentResponse) (*Response, error) {
	if len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("%w: empty response", ErrProviderUnavailable)
	}
	candidate := resp.Candidates[0]
	out := &Response{StopReason: string(candidate.FinishReason)}
	if resp.UsageMetadata != nil {
		out.Usage = TokenUsage{
			InputTokens:  int(resp.UsageMetadata.PromptTokenCount),
			OutputTokens: int(resp.UsageMetadata.CandidatesTokenCount),
		}
	}
	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if part.Text != "" {
				out.TextBlocks = append(out.TextBlocks, part.Text)
			}
			if part.FunctionCall != nil {
				out.ToolUseBlocks = append(out.ToolUseBlocks, ToolUseBlock{
					ID:    part.FunctionCall.ID,
					Name:  part.FunctionCall.Name,
					Input: part.FunctionCall.Args,
				})
			}
		}
	}
	return out, nil
}

func classifyGeminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == 401 || apiErr.Code == 403:
			return fmt.Errorf("%w: %v", ErrProviderAuth, err)
		case apiErr.Code == 429:
			return fmt.Errorf("%w: %v", ErrProviderRateLimited, err)
		case apiErr.Code >= 400 && apiErr.Code < 500:
			return fmt.Errorf("%w: %v", ErrProviderInvalidRequest, err)
		}
	}
	return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
}
