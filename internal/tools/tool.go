// Package tools contains the data-fetching tools the routing agent can
// dispatch to. The set is closed: historical range lookups and intraday
// lookups, nothing else.
package tools

import (
	"context"

	"pulsar/pkg/llm"
)

// Tool names as presented to the classifier.
const (
	NameHistorical = "fetch_daily_data"
	NameIntraday   = "fetch_realtime_data"
)

// Arguments carries the validated inputs for a tool invocation. TenantID is
// always populated from the request, never by the classifier.
type Arguments struct {
	Ticker    string
	StartDate string
	EndDate   string
	TenantID  string
	Interval  string
}

// Tool is one data-fetching capability. Invoke converts every failure into
// an explanatory result string containing "Error" — it must not let a
// transport error escape, so the agent can report it in the answer instead
// of failing the turn.
type Tool interface {
	Name() string
	Definition() llm.Tool
	Invoke(ctx context.Context, args Arguments) string
}
