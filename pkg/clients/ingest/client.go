// Package ingest provides a typed client for the internal batch ingestion service.
package ingest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"pulsar/pkg/clients"
)

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

// DataPoint is one observation for an instrument field on a period date.
type DataPoint struct {
	TenantID     string    `json:"tenant_id"`
	InstrumentID string    `json:"instrument_id"`
	FieldID      string    `json:"field_id"`
	PeriodDate   string    `json:"period_date"`
	Data         ValueData `json:"data"`
}

type ValueData struct {
	Value      float64 `json:"value"`
	ReportTime string  `json:"report_time"`
}

// BatchRequest is the ingest service's batch payload.
type BatchRequest struct {
	TenantID    string      `json:"tenantId"`
	Periodicity string      `json:"periodicity"`
	Data        []DataPoint `json:"data"`
}

// IngestBatch submits a batch of data points for one tenant.
func (c *Client) IngestBatch(ctx context.Context, batch BatchRequest) error {
	payload, err := json.Marshal(batch)
	if err != nil {
		return fmt.Errorf("marshal batch: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/ingest/batch", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create batch request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("ingest service returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}
