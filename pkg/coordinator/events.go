package coordinator

import "github.com/suiteops/suitepilot/pkg/models"

// EventType tags one streamed coordinator event.
type EventType string

const (
	// EventToolStatus reports agent and tool progress while agents run.
	EventToolStatus EventType = "tool_status"
	// EventTextChunk carries one chunk of synthesized answer text.
	EventTextChunk EventType = "text_chunk"
	// EventMessage is the single terminal event. Its Content is the
	// authoritative full answer; the channel closes after it.
	EventMessage EventType = "message"
)

// Event is one entry on a turn's stream. Events arrive in contract order:
// zero or more tool_status, then text chunks, then exactly one message.
type Event struct {
	Type EventType `json:"type"`

	// Tool status fields.
	Agent   string `json:"agent,omitempty"`
	Tool    string `json:"tool,omitempty"`
	Status  string `json:"status,omitempty"`
	Summary string `json:"summary,omitempty"`

	// Text chunk.
	Text string `json:"text,omitempty"`

	// Terminal message fields.
	Content string                  `json:"content,omitempty"`
	CallLog []models.ToolCallRecord `json:"call_log,omitempty"`
}
