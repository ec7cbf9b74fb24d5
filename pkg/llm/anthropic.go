package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicAdapter implements Adapter over the Claude Messages API. It is
// the native-tool-use family: tool calls arrive as typed content blocks.
type AnthropicAdapter struct {
	client sdk.Client
}

// NewAnthropicAdapter creates an adapter from an API key. An optional base
// URL overrides the default endpoint.
func NewAnthropicAdapter(apiKey, baseURL string) (*AnthropicAdapter, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: missing api key", ErrProviderAuth)
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &AnthropicAdapter{client: sdk.NewClient(opts...)}, nil
}

// CreateMessage issues a non-streaming Messages request.
func (a *AnthropicAdapter) CreateMessage(ctx context.Context, req Request) (*Response, error) {
	params, err := anthropicParams(req)
	if err != nil {
		return nil, err
	}
	msg, err := a.client.Messages.New(ctx, *params)
	if err != nil {
		return nil, classifyAnthropicError(err)
	}
	return anthropicResponse(msg), nil
}

// StreamMessage streams text deltas and finishes with the accumulated
// response.
func (a *AnthropicAdapter) StreamMessage(ctx context.Context, req Request) (<-chan StreamEvent, error) {
	params, err := anthropicParams(req)
	if err != nil {
		return nil, err
	}
	events := make(chan StreamEvent, 16)
	go func() {
		defer close(events)
		stream := a.client.Messages.NewStreaming(ctx, *params)
		acc := sdk.Message{}
		for stream.Next() {
			event := stream.Current()
			if err := acc.Accumulate(event); err != nil {
				events <- StreamEvent{Type: StreamEventResponse, Err: fmt.Errorf("accumulate stream event: %w", err)}
				return
			}
			switch ev := event.AsAny().(type) {
			case sdk.ContentBlockDeltaEvent:
				if ev.Delta.Type == "text_delta" && ev.Delta.Text != "" {
					select {
					case events <- StreamEvent{Type: StreamEventText, Text: ev.Delta.Text}:
					case <-ctx.Done():
						events <- StreamEvent{Type: StreamEventResponse, Err: ctx.Err()}
						return
					}
				}
			}
		}
		if err := stream.Err(); err != nil {
			events <- StreamEvent{Type: StreamEventResponse, Err: classifyAnthropicError(err)}
			return
		}
		events <- StreamEvent{Type: StreamEventResponse, Response: anthropicResponse(&acc)}
	}()
	return events, nil
}

func anthropicParams(req Request) (*sdk.MessageNewParams, error) {
	if req.Model == "" {
		return nil, fmt.Errorf("%w: model is required", ErrProviderInvalidRequest)
	}
	if req.MaxTokens <= 0 {
		return nil, fmt.Errorf("%w: max_tokens must be positive", ErrProviderInvalidRequest)
	}

	msgs := make([]sdk.MessageParam, 0, len(req.Messages))
	for _, m := range req.Messages {
		blocks := make([]sdk.ContentBlockParamUnion, 0, 1+len(m.ToolUses)+len(m.ToolResults))
		if m.Text != "" {
			blocks = append(blocks, sdk.NewTextBlock(m.Text))
		}
		for _, tu := range m.ToolUses {
			blocks = append(blocks, sdk.NewToolUseBlock(tu.ID, tu.Input, tu.Name))
		}
		for _, tr := range m.ToolResults {
			blocks = append(blocks, sdk.NewToolResultBlock(tr.ToolUseID, tr.Content, tr.IsError))
		}
		if len(blocks) == 0 {
			continue
		}
		switch m.Role {
		case RoleUser:
			msgs = append(msgs, sdk.NewUserMessage(blocks...))
		case RoleAssistant:
			msgs = append(msgs, sdk.NewAssistantMessage(blocks...))
		default:
			return nil, fmt.Errorf("%w: unsupported role %q", ErrProviderInvalidRequest, m.Role)
		}
	}
	if len(msgs) == 0 {
		return nil, fmt.Errorf("%w: at least one message is required", ErrProviderInvalidRequest)
	}

	params := &sdk.MessageNewParams{
		Model:     sdk.Model(req.Model),
		MaxTokens: int64(req.MaxTokens),
		Messages:  msgs,
	}
	if req.System != "" {
		params.System = []sdk.TextBlockParam{{Text: req.System}}
	}
	if req.Temperature > 0 {
		params.Temperature = sdk.Float(req.Temperature)
	}
	for _, def := range req.Tools {
		u := sdk.ToolUnionParamOfTool(sdk.ToolInputSchemaParam{ExtraFields: def.InputSchema}, def.Name)
		if u.OfTool != nil && def.Description != "" {
			u.OfTool.Description = sdk.String(def.Description)
		}
		params.Tools = append(params.Tools, u)
	}
	return params, nil
}

func anthropicResponse(msg *sdk.Message) *Response {
	resp := &Response{
		StopReason: string(msg.StopReason),
		Usage: TokenUsage{
			InputTokens:  int(msg.Usage.InputTokens),
			OutputTokens: int(msg.Usage.OutputTokens),
		},
	}
	for _, block := range msg.Content {
		switch block.Type {
		case "text":
			if block.Text != "" {
				resp.TextBlocks = append(resp.TextBlocks, block.Text)
			}
		case "tool_use":
			input := map[string]any{}
			if len(block.Input) > 0 {
				// Malformed arguments become an empty input; the tool's
				// parameter validation reports the miss.
				_ = json.Unmarshal(block.Input, &input)
			}
			resp.ToolUseBlocks = append(resp.ToolUseBlocks, ToolUseBlock{
				ID:    block.ID,
				Name:  block.Name,
				Input: input,
			})
		}
	}
	return resp
}

func classifyAnthropicError(err error) error {
	var apiErr *sdk.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == 401 || apiErr.StatusCode == 403:
			return fmt.Errorf("%w: %v", ErrProviderAuth, err)
		case apiErr.StatusCode == 429:
			return fmt.Errorf("%w: %v", ErrProviderRateLimited, err)
		case apiErr.StatusCode >= 400 && apiErr.StatusCode < 500:
			return fmt.Errorf("%w: %v", ErrProviderInvalidRequest, err)
		}
	}
	return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
}
