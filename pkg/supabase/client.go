// Package supabase is a minimal client for running SQL against a Supabase
// project through the PostgREST RPC surface.
//
// Statements go to POST {project}/rest/v1/rpc/execute_sql with the anon key
// in both the apikey and Authorization headers. The execute_sql function is
// not part of a stock project: if it hasn't been created server-side, every
// call fails with 404 and the caller falls back to manual dashboard steps.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	rpcPath = "/rest/v1/rpc/execute_sql"

	// defaultTimeout bounds each RPC call. The tool is a one-shot script;
	// hanging on a dead project URL is worse than giving up.
	defaultTimeout = 30 * time.Second

	// maxErrorBody limits how much of an error response is carried into an
	// error message.
	maxErrorBody = 512
)

// Client talks to a single Supabase project.
type Client struct {
	baseURL string
	anonKey string
	http    *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New validates the project URL and constructs a client. A URL that does not
// parse as an absolute http(s) URL is a construction error: nothing should
// be attempted against a project we cannot address.
func New(projectURL, anonKey string, opts ...Option) (*Client, error) {
	u, err := url.Parse(projectURL)
	if err != nil {
		return nil, fmt.Errorf("invalid project URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid project URL %q: scheme must be http or https", projectURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid project URL %q: missing host", projectURL)
	}
	if anonKey == "" {
		return nil, fmt.Errorf("anon key is required")
	}

	c := &Client{
		baseURL: strings.TrimRight(projectURL, "/"),
		anonKey: anonKey,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// rpcRequest is the execute_sql parameter payload.
type rpcRequest struct {
	SQL string `json:"sql"`
}

// RunSQL executes one statement through the RPC endpoint. Any non-2xx
// response is an error carrying the status and a snippet of the body.
func (c *Client) RunSQL(ctx context.Context, query string) error {
	body, err := json.Marshal(rpcRequest{SQL: query})
	if err != nil {
		return fmt.Errorf("encoding rpc payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+rpcPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building rpc request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+c.anonKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling execute_sql: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		// Drain so the connection can be reused across the statement loop.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return fmt.Errorf("execute_sql returned %s: %s", resp.Status, strings.TrimSpace(string(snippet)))
}
