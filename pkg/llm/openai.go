package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	oa "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIAdapter implements Adapter over the Chat Completions API. It is the
// function-call family: tool calls arrive as JSON-encoded function
// arguments on the assistant message.
type OpenAIAdapter struct {
	client oa.Client
}

// NewOpenAIAdapter creates an adapter from an API key. An optional base URL
// supports OpenAI-compatible endpoints.
func NewOpenAIAdapter(apiKey, baseURL string) (*OpenAIAdapter, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: missing api key", ErrProviderAuth)
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &OpenAIAdapter{client: oa.NewClient(opts...)}, nil
}

// CreateMessage issues a non-streaming chat completion.
func (a *OpenAIAdapter) CreateMessage(ctx context.Context, req Request) (*Response, error) {
	params, err := openaiParams(req)
	if err != nil {
		return nil, err
	}
	completion, err := a.client.Chat.Completions.New(ctx, *params)
	if err != nil {
		return nil, classifyOpenAIError(err)
	}
	return openaiResponse(completion)
}

// StreamMessage streams content deltas and finishes with the accumulated
// response.
func (a *OpenAIAdapter) StreamMessage(ctx context.Context, req Request) (<-chan StreamEvent, error) {
	params, err := openaiParams(req)
	if err != nil {
		return nil, err
	}
	events := make(chan StreamEvent, 16)
	go func() {
		defer close(events)
		stream := a.client.Chat.Completions.NewStreaming(ctx, *params)
		acc := oa.ChatCompletionAccumulator{}
		for stream.Next() {
			chunk := stream.Current()
			acc.AddChunk(chunk)
			if len(chunk.Choices) > 0 && chunk.Choices[0].Delta.Content != "" {
				select {
				case events <- StreamEvent{Type: StreamEventText, Text: chunk.Choices[0].Delta.Content}:
				case <-ctx.Done():
					events <- StreamEvent{Type: StreamEventResponse, Err: ctx.Err()}
					return
				}
			}
		}
		if err := stream.Err(); err != nil {
			events <- StreamEvent{Type: StreamEventResponse, Err: classifyOpenAIError(err)}
			return
		}
		resp, err := openaiResponse(&acc.ChatCompletion)
		if err != nil {
			events <- StreamEvent{Type: StreamEventResponse, Err: err}
			return
		}
		events <- StreamEvent{Type: StreamEventResponse, Response: resp}
	}()
	return events, nil
}

func openaiParams(req Request) (*oa.ChatCompletionNewParams, error) {
	if req.Model == "" {
		return nil, fmt.Errorf("%w: model is required", ErrProviderInvalidRequest)
	}

	msgs := make([]oa.ChatCompletionMessageParamUnion, 0, len(req.Messages)+1)
	if req.System != "" {
		msgs = append(msgs, oa.SystemMessage(req.System))
	}
	for _, m := range req.Messages {
		switch m.Role {
		case RoleUser:
			if m.Text != "" {
				msgs = append(msgs, oa.UserMessage(m.Text))
			}
			// Tool results ride as dedicated tool-role messages.
			for _, tr := range m.ToolResults {
				msgs = append(msgs, oa.ToolMessage(tr.Content, tr.ToolUseID))
			}
		case RoleAssistant:
			assistant := oa.ChatCompletionAssistantMessageParam{}
			if m.Text != "" {
				assistant.Content.OfString = oa.String(m.Text)
			}
			for _, tu := range m.ToolUses {
				args, err := json.Marshal(tu.Input)
				if err != nil {
					return nil, fmt.Errorf("%w: encode tool arguments: %v", ErrProviderInvalidRequest, err)
				}
				assistant.ToolCalls = append(assistant.ToolCalls, oa.ChatCompletionMessageToolCallParam{
					ID: tu.ID,
					Function: oa.ChatCompletionMessageToolCallFunctionParam{
						Name:      tu.Name,
						Arguments: string(args),
					},
				})
			}
			msgs = append(msgs, oa.ChatCompletionMessageParamUnion{OfAssistant: &assistant})
		default:
			return nil, fmt.Errorf("%w: unsupported role %q", ErrProviderInvalidRequest, m.Role)
		}
	}
	if len(msgs) == 0 {
		return nil, fmt.Errorf("%w: at least one message is required", ErrProviderInvalidRequest)
	}

	params := &oa.ChatCompletionNewParams{
		Model:    oa.ChatModel(req.Model),
		Messages: msgs,
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = oa.Int(int64(req.MaxTokens))
	}
	if req.Temperature > 0 {
		params.Temperature = oa.Float(req.Temperature)
	}
	for _, def := range req.Tools {
		fn := oa.FunctionDefinitionParam{
			Name:       def.Name,
			Parameters: oa.FunctionParameters(def.InputSchema),
		}
		if def.Description != "" {
			fn.Description = oa.String(def.Description)
		}
		params.Tools = append(params.Tools, oa.ChatCompletionToolParam{Function: fn})
	}
	return params, nil
}

func openaiResponse(completion *oa.ChatCompletion) (*Response, error) {
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty completion", ErrProviderUnavailable)
	}
	choice := completion.Choices[0]
	resp := &Response{
		StopReason: string(choice.FinishReason),
		Usage: TokenUsage{
			InputTokens:  int(completion.Usage.PromptTokens),
			OutputTokens: int(completion.Usage.CompletionTokens),
		},
	}
	if choice.Message.Content != "" {
		resp.TextBlocks = append(resp.TextBlocks, choice.Message.Content)
	}
	for _, tc := range choice.Message.ToolCalls {
		input := map[string]any{}
		if tc.Function.Arguments != "" {
			_ = json.Unmarshal([]byte(tc.Function.Arguments), &input)
		}
		resp.ToolUseBlocks = append(resp.ToolUseBlocks, ToolUseBlock{
			ID:    tc.ID,
			Name:  tc.Function.Name,
			Input: input,
		})
	}
	return resp, nil
}

func classifyOpenAIError(err error) error {
	var apiErr *oa.Error
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
