package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suiteops/suitepilot/pkg/coordinator"
	"github.com/suiteops/suitepilot/pkg/models"
)

type fakeChat struct {
	events   []coordinator.Event
	identity models.Identity
	message  string
}

func (f *fakeChat) Process(_ context.Context, identity models.Identity, message string) <-chan coordinator.Event {
	f.identity = identity
	f.message = message
	ch := make(chan coordinator.Event, len(f.events))
	for _, e := range f.events {
		ch <- e
	}
	close(ch)
	return ch
}

func newTestServer(chat ChatProcessor) *Server {
	return NewServer(nil, nil, chat, nil, nil)
}

func TestChatHandler_StreamsEvents(t *testing.T) {
	chat := &fakeChat{events: []coordinator.Event{
		{Type: coordinator.EventToolStatus, Agent: "suiteql", Tool: "netsuite.suiteql", Status: "running"},
		{Type: coordinator.EventTextChunk, Text: "Your top customer "},
		{Type: coordinator.EventTextChunk, Text: "is Northwind."},
		{Type: coordinator.EventMessage, Content: "Your top customer is Northwind."},
	}}
	srv := newTestServer(chat)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{"message":"who is my top customer?"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Tenant-ID", "tenant-a")
	req.Header.Set("X-User-ID", "user-1")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))

	body := rec.Body.String()
	assert.Contains(t, body, "event: tool_status")
	assert.Contains(t, body, "event: text_chunk")
	assert.Contains(t, body, "event: message")
	assert.Contains(t, body, "Your top customer is Northwind.")

	assert.Equal(t, "tenant-a", chat.identity.TenantID)
	assert.Equal(t, "user-1", chat.identity.ActorID)
	assert.NotEmpty(t, chat.identity.CorrelationID)
	assert.Equal(t, "who is my top customer?", chat.message)
}

func TestChatHandler_RejectsEmptyMessage(t *testing.T) {
	srv := newTestServer(&fakeChat{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{"message":""}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Tenant-ID", "tenant-a")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatHandler_RequiresTenantHeader(t *testing.T) {
	srv := newTestServer(&fakeChat{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{"message":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHealthHandler_NoDatabase(t *testing.T) {
	srv := newTestServer(&fakeChat{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)
}

func TestSecurityHeaders(t *testing.T) {
	srv := newTestServer(&fakeChat{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}
