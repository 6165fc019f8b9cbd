// Package alphavantage provides a client for the Alpha Vantage market-data API.
package alphavantage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"pulsar/pkg/clients"
)

const defaultBaseURL = "https://www.alphavantage.co"

// DemoAPIKey is Alpha Vantage's shared public key, used when no key is configured.
const DemoAPIKey = "demo"

// Intervals supported by the intraday endpoint.
var ValidIntervals = []string{"1min", "5min", "15min", "30min", "60min"}

// IsValidInterval reports whether interval is one of the supported values.
func IsValidInterval(interval string) bool {
	for _, v := range ValidIntervals {
		if v == interval {
			return true
		}
	}
	return false
}

type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

type Option func(*Client)

func NewClient(apiKey string, opts ...Option) *Client {
	if strings.TrimSpace(apiKey) == "" {
		apiKey = DemoAPIKey
	}
	c := &Client{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		client:  clients.DefaultHTTPClient(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.client = httpClient
		}
	}
}

// Bar is one intraday candle. Alpha Vantage serializes numbers as strings.
type Bar struct {
	Open   string `json:"1. open"`
	High   string `json:"2. high"`
	Low    string `json:"3. low"`
	Close  string `json:"4. close"`
	Volume string `json:"5. volume"`
}

// IntradayData is the parsed intraday payload. When the expected time-series
// key is absent, Series is nil and Note/ErrorMessage carry the upstream's own
// explanation (rate limiting, bad symbol).
type IntradayData struct {
	Series       map[string]Bar
	Note         string
	ErrorMessage string
}

// Intraday fetches the intraday time series for a symbol at the given interval.
// Series keys are "YYYY-MM-DD HH:MM:SS" timestamps.
func (c *Client) Intraday(ctx context.Context, symbol, interval string) (IntradayData, error) {
	query := url.Values{}
	query.Set("function", "TIME_SERIES_INTRADAY")
	query.Set("symbol", symbol)
	query.Set("interval", interval)
	query.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/query?"+query.Encode(), nil)
	if err != nil {
		return IntradayData{}, fmt.Errorf("create intraday request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return IntradayData{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		return IntradayData{}, fmt.Errorf("alpha vantage returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload struct {
		Note         string `json:"Note"`
		ErrorMessage string `json:"Error Message"`
		Information  string `json:"Information"`
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return IntradayData{}, fmt.Errorf("read intraday response: %w", err)
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return IntradayData{}, fmt.Errorf("decode intraday response: %w", err)
	}

	// The series lives under a key derived from the interval,
	// e.g. "Time Series (5min)".
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return IntradayData{}, fmt.Errorf("decode intraday envelope: %w", err)
	}

	data := IntradayData{
		Note:         payload.Note,
		ErrorMessage: payload.ErrorMessage,
	}
	if data.Note == "" && payload.Information != "" {
		data.Note = payload.Information
	}

	seriesKey := fmt.Sprintf("Time Series (%s)", interval)
	raw, ok := envelope[seriesKey]
	if !ok {
		return data, nil
	}
	if err := json.Unmarshal(raw, &data.Series); err != nil {
		return IntradayData{}, fmt.Errorf("decode intraday series: %w", err)
	}
	return data, nil
}
