package api

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

const maxChatMessageLen = 100_000

// ChatRequest is the POST /api/v1/chat request body.
type ChatRequest struct {
	Message string `json:"message"`
}

// chatHandler handles POST /api/v1/chat. The response is an SSE stream:
// tool_status events while specialists run, text chunks during synthesis,
// then exactly one terminal message event.
func (s *Server) chatHandler(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}
	if len(req.Message) > maxChatMessageLen {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message exceeds maximum length of 100,000 characters"})
		return
	}

	identity := requestIdentity(c)

	h := c.Writer.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	events := s.chat.Process(c.Request.Context(), identity, req.Message)
	for event := range events {
		data, err := json.Marshal(event)
		if err != nil {
			continue
		}
		if _, err := c.Writer.WriteString("event: " + string(event.Type) + "\ndata: " + string(data) + "\n\n"); err != nil {
			// Client went away; the coordinator stops via request context.
			return
		}
		c.Writer.Flush()
	}
}
