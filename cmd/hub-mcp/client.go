package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/bobmcallan/hub-mcp/internal/hub/common"
)

// githubClient issues REST calls to the GitHub API on behalf of MCP tool
// handlers. The bearer token is resolved once at startup; an empty token
// means requests go out unauthenticated.
type githubClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *common.Logger
}

// newGitHubClient creates a GitHub API client from config.
func newGitHubClient(cfg common.GitHubConfig, logger *common.Logger) *githubClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.github.com"
	}

	return &githubClient{
		baseURL: baseURL,
		token:   cfg.Token,
		httpClient: &http.Client{
			Timeout: cfg.GetTimeout(),
		},
		logger: logger,
	}
}

// get performs a GET request and returns the response body.
func (c *githubClient) get(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

// post performs a POST request with JSON body and returns the response body.
func (c *githubClient) post(ctx context.Context, path string, data interface{}) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path, data)
}

// put performs a PUT request with JSON body and returns the response body.
func (c *githubClient) put(ctx context.Context, path string, data interface{}) ([]byte, error) {
	return c.do(ctx, http.MethodPut, path, data)
}

// del performs a DELETE request and returns the response body.
// GitHub answers deletions with 204 No Content — an empty body on a 2xx
// status is success, not an error.
func (c *githubClient) del(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodDelete, path, nil)
}

// do performs an HTTP request against the GitHub API.
func (c *githubClient) do(ctx context.Context, method, path string, data interface{}) ([]byte, error) {
	log := c.logger.WithCorrelationId(uuid.NewString())

	log.Debug().
		Str("method", method).
		Str("path", path).
		Msg("GitHub API Request")

	var bodyReader io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", "hub-mcp/"+common.GetVersion())
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		log.Error().Err(err).Str("path", path).Dur("duration", duration).Msg("GitHub API Request Failed")
		return nil, fmt.Errorf("github request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	log.Debug().
		Str("status", resp.Status).
		Int("status_code", resp.StatusCode).
		Dur("duration", duration).
		Msg("GitHub API Response")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(body, &errResp) == nil && errResp.Message != "" {
			return nil, fmt.Errorf("GitHub returned %d: %s", resp.StatusCode, errResp.Message)
		}
		return nil, fmt.Errorf("GitHub returned %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}
