package tools

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"sync"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Transport types for external connectors.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

const (
	connectorInitTimeout = 30 * time.Second
	connectorCallTimeout = 60 * time.Second
)

// TransportConfig describes how to reach one MCP connector.
type TransportConfig struct {
	Type        string            `yaml:"type"`
	Command     string            `yaml:"command"`
	Args        []string          `yaml:"args"`
	Env         map[string]string `yaml:"env"`
	URL         string            `yaml:"url"`
	BearerToken string            `yaml:"bearer_token"`
	TimeoutSecs int               `yaml:"timeout"`
}

// ConnectorConfig is one external MCP connector. Disabled connectors are
// kept in configuration but rejected at dispatch time.
type ConnectorConfig struct {
	ID        string          `yaml:"id"`
	Name      string          `yaml:"name"`
	Enabled   bool            `yaml:"enabled"`
	Transport TransportConfig `yaml:"transport"`
}

// RemoteClient manages MCP sessions for external connectors. Sessions are
// established lazily on first call and reused. Thread-safe.
type RemoteClient struct {
	connectors map[string]*ConnectorConfig

	mu       sync.RWMutex
	sessions map[string]*mcpsdk.ClientSession

	appName    string
	appVersion string
}

// NewRemoteClient builds a client over the configured connectors.
func NewRemoteClient(connectors []*ConnectorConfig, appName, appVersion string) *RemoteClient {
	byID := make(map[string]*ConnectorConfig, len(connectors))
	for _, c := range connectors {
		byID[c.ID] = c
	}
	return &RemoteClient{
		connectors: byID,
		sessions:   make(map[string]*mcpsdk.ClientSession),
		appName:    appName,
		appVersion: appVersion,
	}
}

// Connector returns the configuration for a connector ID.
func (c *RemoteClient) Connector(id string) (*ConnectorConfig, bool) {
	cfg, ok := c.connectors[id]
	return cfg, ok
}

// CallTool executes a tool on a connector, connecting on first use. The
// result is the concatenated text content; a tool-level error surfaces as
// a Go error so the dispatcher can wrap it.
func (c *RemoteClient) CallTool(ctx context.Context, connectorID, toolName string, args map[string]any) (string, error) {
	session, err := c.session(ctx, connectorID)
	if err != nil {
		return "", err
	}

	opCtx, cancel := context.WithTimeout(ctx, connectorCallTimeout)
	defer cancel()

	result, err := session.CallTool(opCtx, &mcpsdk.CallToolParams{
		Name:      toolName,
		Arguments: args,
	})
	if err != nil {
		return "", fmt.Errorf("connector %q tool %q: %w", connectorID, toolName, err)
	}

	content := extractTextContent(result)
	if result.IsError {
		return "", fmt.Errorf("connector %q tool %q failed: %s", connectorID, toolName, content)
	}
	return content, nil
}

// ListTools lists the tools a connector exposes.
func (c *RemoteClient) ListTools(ctx context.Context, connectorID string) ([]*mcpsdk.Tool, error) {
	session, err := c.session(ctx, connectorID)
	if err != nil {
		return nil, err
	}

	opCtx, cancel := context.WithTimeout(ctx, connectorCallTimeout)
	defer cancel()

	result, err := session.ListTools(opCtx, nil)
	if err != nil {
		return nil, fmt.Errorf("list tools from connector %q: %w", connectorID, err)
	}
	return result.Tools, nil
}

// Close shuts down all connector sessions.
func (c *RemoteClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	var firstErr error
	for id, session := range c.sessions {
		if err := session.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close connector %q: %w", id, err)
		}
	}
	c.sessions = make(map[string]*mcpsdk.ClientSession)
	return firstErr
}

func (c *RemoteClient) session(ctx context.Context, connectorID string) (*mcpsdk.ClientSession, error) {
	c.mu.RLock()
	session, exists := c.sessions[connectorID]
	c.mu.RUnlock()
	if exists {
		return session, nil
	}

	cfg, ok := c.connectors[connectorID]
	if !ok {
		return nil, fmt.Errorf("unknown connector %q", connectorID)
	}

	transport, err := createTransport(cfg.Transport)
	if err != nil {
		return nil, fmt.Errorf("connector %q transport: %w", connectorID, err)
	}

	initCtx, cancel := context.WithTimeout(ctx, connectorInitTimeout)
	defer cancel()

	client := mcpsdk.NewClient(&mcpsdk.Implementation{
		Name:    c.appName,
		Version: c.appVersion,
	}, nil)
	session, err = client.Connect(initCtx, transport, nil)
	if err != nil {
		return nil, fmt.Errorf("connect to connector %q: %w", connectorID, err)
	}

	c.mu.Lock()
	// A racing goroutine may have connected first; keep its session.
	if existing, ok := c.sessions[connectorID]; ok {
		c.mu.Unlock()
		_ = session.Close()
		return existing, nil
	}
	c.sessions[connectorID] = session
	c.mu.Unlock()
	return session, nil
}

func createTransport(cfg TransportConfig) (mcpsdk.Transport, error) {
	switch cfg.Type {
	case TransportStdio:
		if cfg.Command == "" {
			return nil, fmt.Errorf("stdio transport requires command")
		}
		cmd := exec.Command(cfg.Command, cfg.Args...)
		env := os.Environ()
		for k, v := range cfg.Env {
			env = append(env, fmt.Sprintf("%s=%s", k, v))
		}
		cmd.Env = env
		return &mcpsdk.CommandTransport{Command: cmd}, nil
	case TransportHTTP:
		if cfg.URL == "" {
			return nil, fmt.Errorf("http transport requires url")
		}
		transport := &mcpsdk.StreamableClientTransport{Endpoint: cfg.URL}
		if cfg.BearerToken != "" || cfg.TimeoutSecs > 0 {
			transport.HTTPClient = buildHTTPClient(cfg)
		}
		return transport, nil
	default:
		return nil, fmt.Errorf("unsupported transport type: %s", cfg.Type)
	}
}

func buildHTTPClient(cfg TransportConfig) *http.Client {
	client := &http.Client{}
	if cfg.BearerToken != "" {
		client.Transport = &bearerTokenTransport{
			base:  http.DefaultTransport,
			token: cfg.BearerToken,
		}
	}
	if cfg.TimeoutSecs > 0 {
		client.Timeout = time.Duration(cfg.TimeoutSecs) * time.Second
	}
	return client
}

type bearerTokenTransport struct {
	base  http.RoundTripper
	token string
}

func (t *bearerTokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "Bearer "+t.token)
	return t.base.RoundTrip(req)
}

// extractTextContent concatenates the text items of an MCP result,
// skipping non-text content.
func extractTextContent(result *mcpsdk.CallToolResult) string {
	var out string
	for _, c := range result.Content {
		if tc, ok := c.(*mcpsdk.TextContent); ok {
			out += tc.Text
		}
	}
	return out
}
