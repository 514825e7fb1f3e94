package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Sentinel errors for the transient-overload taxonomy. Callers treat both as
// "turn never started": show a passing notification, mutate nothing.
var (
	// ErrRateLimited indicates the gateway returned HTTP 429
	ErrRateLimited = errors.New("gateway rate limited")

	// ErrQuotaExhausted indicates the gateway returned HTTP 402
	ErrQuotaExhausted = errors.New("gateway quota exhausted")
)

// Client provides HTTP access to the agent gateway.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewClient creates an agent gateway client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		logger:     slog.Default(),
	}
}

// Converse sends one turn to the gateway and returns the assistant content
// plus any tool-call descriptors. bearerToken is the caller's credential,
// passed through verbatim (may be empty for anonymous demo sessions).
//
// Error mapping: 429 → ErrRateLimited, 402 → ErrQuotaExhausted, any other
// non-2xx or a malformed body → generic error. The client never retries; the
// orchestrator decides what a failed turn means.
func (c *Client) Converse(ctx context.Context, req *ConverseRequest, bearerToken string) (*ConverseResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal converse request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/converse", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if bearerToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+bearerToken)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("call gateway: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case resp.StatusCode == http.StatusPaymentRequired:
		return nil, ErrQuotaExhausted
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		// Bounded read keeps a misbehaving gateway from flooding the log
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Warn("Gateway returned error status",
			"status", resp.StatusCode, "body", string(snippet))
		return nil, fmt.Errorf("gateway returned HTTP %d", resp.StatusCode)
	}

	var out ConverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode gateway response: %w", err)
	}
	return &out, nil
}
