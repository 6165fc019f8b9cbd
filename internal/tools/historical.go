package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"pulsar/pkg/clients/queryservice"
	"pulsar/pkg/llm"
)

const dailyPeriodicity = "DAILY"

// HistoricalTool fetches daily pricing over a date range from the internal
// query service.
type HistoricalTool struct {
	client        *queryservice.Client
	defaultTenant string
}

func NewHistoricalTool(client *queryservice.Client, defaultTenant string) *HistoricalTool {
	if defaultTenant == "" {
		defaultTenant = "DEFAULT"
	}
	return &HistoricalTool{client: client, defaultTenant: defaultTenant}
}

func (t *HistoricalTool) Name() string { return NameHistorical }

// Definition describes the tool to the classifier. tenant_id is deliberately
// absent: it is threaded in from the request, not extracted from text.
func (t *HistoricalTool) Definition() llm.Tool {
	return llm.Tool{
		Name:        NameHistorical,
		Description: "Fetches daily pricing data for a given ticker and date range.",
		Parameters: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"ticker": map[string]interface{}{
					"type":        "string",
					"description": "The instrument ID (e.g. IBM).",
				},
				"start_date": map[string]interface{}{
					"type":        "string",
					"description": "The start date in YYYY-MM-DD format.",
				},
				"end_date": map[string]interface{}{
					"type":        "string",
					"description": "The end date in YYYY-MM-DD format.",
				},
			},
			"required": []string{"ticker", "start_date", "end_date"},
		},
	}
}

func (t *HistoricalTool) Invoke(ctx context.Context, args Arguments) string {
	tenantID := args.TenantID
	if tenantID == "" {
		tenantID = t.defaultTenant
	}

	raw, err := t.client.QueryRange(ctx, tenantID, dailyPeriodicity, queryservice.RangeQuery{
		InstrumentID: args.Ticker,
		StartDate:    args.StartDate,
		EndDate:      args.EndDate,
	})
	if err != nil {
		return fmt.Sprintf("Error fetching daily data: %v", err)
	}

	var compacted bytes.Buffer
	if err := json.Compact(&compacted, raw); err != nil {
		return fmt.Sprintf("Error fetching daily data: %v", err)
	}
	return compacted.String()
}
