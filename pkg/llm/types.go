package llm

import (
	"context"
	"errors"
)

// Provider-level failures. Adapters classify transport errors into these
// sentinels and never retry internally; the agent loop decides.
var (
	ErrProviderAuth           = errors.New("provider authentication failed")
	ErrProviderRateLimited    = errors.New("provider rate limited")
	ErrProviderUnavailable    = errors.New("provider unavailable")
	ErrProviderInvalidRequest = errors.New("provider rejected request")
)

// Role of a conversation message. System prompts travel out of band on the
// request, not as a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ToolUseBlock is one tool invocation requested by the model.
type ToolUseBlock struct {
	ID    string
	Name  string
	Input map[string]any
}

// ToolResult carries the outcome of one tool invocation back to the model.
// Name is required by providers that key function responses by name.
type ToolResult struct {
	ToolUseID string
	Name      string
	Content   string
	IsError   bool
}

// Message is one canonical conversation turn. Assistant messages may carry
// tool-use blocks; user messages may carry tool results.
type Message struct {
	Role        Role
	Text        string
	ToolUses    []ToolUseBlock
	ToolResults []ToolResult
}

// ToolDefinition describes one tool advertised to the model. InputSchema is
// a JSON schema object.
type ToolDefinition struct {
	Name        string
	Description string
	InputSchema map[string]any
}

// Request is a canonical completion request.
type Request struct {
	Model       string
	MaxTokens   int
	System      string
	Messages    []Message
	Tools       []ToolDefinition
	Temperature float64
}

// TokenUsage accumulates across an agent turn.
type TokenUsage struct {
	InputTokens  int
	OutputTokens int
}

// Add accumulates another usage sample.
func (u *TokenUsage) Add(other TokenUsage) {
	u.InputTokens += other.InputTokens
	u.OutputTokens += other.OutputTokens
}

// Response is a canonical completion response. Block order is preserved
// from the provider.
type Response struct {
	TextBlocks    []string
	ToolUseBlocks []ToolUseBlock
	Usage         TokenUsage
	StopReason    string
}

// Text joins the response's text blocks.
func (r *Response) Text() string {
	out := ""
	for _, t := range r.TextBlocks {
		out += t
	}
	return out
}

// StreamEventType tags a StreamEvent.
type StreamEventType string

const (
	// StreamEventText is an incremental text chunk.
	StreamEventText StreamEventType = "text"
	// StreamEventResponse is the terminal event carrying the full response.
	StreamEventResponse StreamEventType = "response"
)

// StreamEvent is one element of a streamed completion. The terminal event
// has either Response or Err set and is always last; the channel is closed
// after it.
type StreamEvent struct {
	Type     StreamEventType
	Text     string
	Response *Response
	Err      error
}

// Adapter is the provider-neutral LLM surface.
type Adapter interface {
	CreateMessage(ctx context.Context, req Request) (*Response, error)
	StreamMessage(ctx context.Context, req Request) (<-chan StreamEvent, error)
}
