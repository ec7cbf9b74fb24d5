// Package netsuite provides the account-facing capabilities behind the
// tool catalog: SuiteQL execution (real and stub), payout reconciliation,
// report export, and scheduled jobs.
package netsuite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/suiteops/suitepilot/pkg/models"
)

// AccountCredentials connect one tenant to its NetSuite account.
type AccountCredentials struct {
	AccountID string
	Token     string
}

// CredentialSource resolves per-tenant account credentials.
type CredentialSource interface {
	Credentials(ctx context.Context, tenantID string) (AccountCredentials, error)
}

// StaticCredentialSource resolves credentials from encrypted blobs loaded
// at startup, one per tenant.
type StaticCredentialSource struct {
	store SecretStore
	blobs map[string]string
}

// NewStaticCredentialSource creates a source over tenant-keyed encrypted
// credential blobs.
func NewStaticCredentialSource(store SecretStore, blobs map[string]string) *StaticCredentialSource {
	return &StaticCredentialSource{store: store, blobs: blobs}
}

func (s *StaticCredentialSource) Credentials(_ context.Context, tenantID string) (AccountCredentials, error) {
	blob, ok := s.blobs[tenantID]
	if !ok {
		return AccountCredentials{}, fmt.Errorf("no credentials configured for tenant %s", tenantID)
	}
	creds, err := s.store.Decrypt(blob)
	if err != nil {
		return AccountCredentials{}, err
	}
	if creds["account_id"] == "" || creds["token"] == "" {
		return AccountCredentials{}, fmt.Errorf("credentials for tenant %s are incomplete", tenantID)
	}
	return AccountCredentials{AccountID: creds["account_id"], Token: creds["token"]}, nil
}

// RESTClient executes SuiteQL over the SuiteTalk REST query endpoint.
type RESTClient struct {
	creds      CredentialSource
	httpClient *http.Client
	// baseURLFor is overridable so tests can point at a local server.
	baseURLFor func(accountID string) string
}

// NewRESTClient creates a client with a 30-second HTTP timeout.
func NewRESTClient(creds CredentialSource) *RESTClient {
	return &RESTClient{
		creds:      creds,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURLFor: func(accountID string) string {
			return fmt.Sprintf("https://%s.suitetalk.api.netsuite.com/services/rest", accountID)
		},
	}
}

type suiteQLResponse struct {
	Items      []map[string]any `json:"items"`
	TotalCount int              `json:"totalResults"`
	HasMore    bool             `json:"hasMore"`
}

// ExecuteSuiteQL runs one query and returns a columns/rows payload.
func (c *RESTClient) ExecuteSuiteQL(ctx context.Context, identity models.Identity, query string, limit int) (map[string]any, error) {
	creds, err := c.creds.Credentials(ctx, identity.TenantID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 100
	}

	body, err := json.Marshal(map[string]string{"q": query})
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/query/v1/suiteql?limit=%d", c.baseURLFor(creds.AccountID), limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "transient")
	req.Header.Set("Authorization", "Bearer "+creds.Token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("suiteql request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("suiteql response read failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("suiteql returned status %d: %s", resp.StatusCode, truncate(string(data), 300))
	}

	var parsed suiteQLResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("suiteql response malformed: %w", err)
	}
	return tabulate(parsed.Items, limit), nil
}

// CheckConnectivity verifies credentials with a trivial query.
func (c *RESTClient) CheckConnectivity(ctx context.Context, identity models.Identity) (map[string]any, error) {
	start := time.Now()
	if _, err := c.ExecuteSuiteQL(ctx, identity, "SELECT 1 AS ok FROM DUAL WHERE ROWNUM <= 1", 1); err != nil {
		return nil, err
	}
	return map[string]any{
		"status":     "connected",
		"latency_ms": time.Since(start).Milliseconds(),
	}, nil
}

// SampleTable reads a handful of rows to expose a table's shape.
func (c *RESTClient) SampleTable(ctx context.Context, identity models.Identity, tableName string, limit int) (map[string]any, error) {
	if limit <= 0 || limit > 10 {
		limit = 5
	}
	query := fmt.Sprintf("SELECT * FROM %s WHERE ROWNUM <= %d", tableName, limit)
	return c.ExecuteSuiteQL(ctx, identity, query, limit)
}

// tabulate converts the REST item list to the stable columns/rows shape
// every query result uses. Column order follows the first item's keys
// sorted for determinism.
func tabulate(items []map[string]any, limit int) map[string]any {
	if len(items) > limit {
		items = items[:limit]
	}
	columns := columnSet(items)
	rows := make([]any, 0, len(items))
	for _, item := range items {
		row := make([]any, len(columns))
		for i, col := range columns {
			row[i] = item[col]
		}
		rows = append(rows, row)
	}
	return map[string]any{
		"columns":   columns,
		"rows":      rows,
		"row_count": len(rows),
	}
}

// columnSet returns the first item's keys, sorted, skipping the REST
// metadata "links" key.
func columnSet(items []map[string]any) []string {
	if len(items) == 0 {
		return []string{}
	}
	columns := make([]string, 0, len(items[0]))
	for key := range items[0] {
		if key == "links" {
			continue
		}
		columns = append(columns, key)
	}
	sort.Strings(columns)
	return columns
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
