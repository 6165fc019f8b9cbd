package tools

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"pulsar/pkg/clients/alphavantage"
	"pulsar/pkg/llm"
)

const (
	defaultInterval = "5min"
	maxRecentPoints = 10
)

// IntradayTool fetches live intraday pricing from the Alpha Vantage API.
type IntradayTool struct {
	client *alphavantage.Client
}

func NewIntradayTool(client *alphavantage.Client) *IntradayTool {
	return &IntradayTool{client: client}
}

func (t *IntradayTool) Name() string { return NameIntraday }

func (t *IntradayTool) Definition() llm.Tool {
	return llm.Tool{
		Name:        NameIntraday,
		Description: "Fetches real-time (intraday) pricing data for a given ticker.",
		Parameters: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"ticker": map[string]interface{}{
					"type":        "string",
					"description": "The stock ticker symbol (e.g. IBM).",
				},
				"interval": map[string]interface{}{
					"type":        "string",
					"description": "The time interval between data points. Default is 5min.",
					"enum":        alphavantage.ValidIntervals,
				},
			},
			"required": []string{"ticker"},
		},
	}
}

func (t *IntradayTool) Invoke(ctx context.Context, args Arguments) string {
	interval := args.Interval
	if interval == "" {
		interval = defaultInterval
	}
	if !alphavantage.IsValidInterval(interval) {
		return fmt.Sprintf("Error fetching real-time data: unsupported interval %q (valid: %s)",
			interval, strings.Join(alphavantage.ValidIntervals, ", "))
	}

	data, err := t.client.Intraday(ctx, args.Ticker, interval)
	if err != nil {
		return fmt.Sprintf("Error fetching real-time data: %v", err)
	}

	if data.Series == nil {
		reason := data.Note
		if reason == "" {
			reason = data.ErrorMessage
		}
		if reason == "" {
			reason = "Unknown error"
		}
		return fmt.Sprintf("Could not find intraday data for %s. Alpha Vantage Note: %s", args.Ticker, reason)
	}

	// Newest first. JSON object order is lost on decode, so sort explicitly;
	// ISO timestamps sort correctly as strings.
	timestamps := make([]string, 0, len(data.Series))
	for ts := range data.Series {
		timestamps = append(timestamps, ts)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(timestamps)))
	if len(timestamps) > maxRecentPoints {
		timestamps = timestamps[:maxRecentPoints]
	}

	lines := []string{fmt.Sprintf("Real-time data for %s (%s intervals):", args.Ticker, interval)}
	for _, ts := range timestamps {
		lines = append(lines, fmt.Sprintf("%s: $%s", ts, data.Series[ts].Close))
	}
	return strings.Join(lines, "\n")
}
