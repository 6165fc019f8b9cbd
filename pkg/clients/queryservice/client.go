// Package queryservice provides a typed client for the internal pricing
// query service.
package queryservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"pulsar/pkg/clients"
)

type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("query service returned status %d: %s", e.StatusCode, e.Body)
}

type Client struct {
	baseURL string
	client  *http.Client
}

type Option func(*Client)

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  clients.DefaultHTTPClient(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.client = httpClient
		}
	}
}

// RangeQuery selects instrument data over an inclusive date range.
type RangeQuery struct {
	InstrumentID string `json:"instrument_id"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
}

// QueryRange fetches tenant-scoped pricing data at the given periodicity.
// The upstream body is returned verbatim; callers decide how to render it.
func (c *Client) QueryRange(ctx context.Context, tenantID, periodicity string, q RangeQuery) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/api/query/%s/%s", c.baseURL, url.PathEscape(tenantID), url.PathEscape(periodicity))

	payload, err := json.Marshal(q)
	if err != nil {
		return nil, fmt.Errorf("marshal range query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create range query request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read range query response: %w", err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("query service returned invalid JSON")
	}
	return json.RawMessage(body), nil
}
