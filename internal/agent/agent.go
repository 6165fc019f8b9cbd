// Package agent routes a natural-language instruction to at most one data
// tool and composes the final answer.
package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"pulsar/internal/tools"
	"pulsar/pkg/logging"
)

// ToolInvocation records a single tool dispatch within one request.
type ToolInvocation struct {
	Name   string          `json:"name"`
	Args   tools.Arguments `json:"args"`
	Result string          `json:"result"`
}

// Result is the agent's outcome for one instruction.
type Result struct {
	Answer     string
	Invocation *ToolInvocation // nil when no tool fired
}

// ToolUsed returns the invoked tool's name, or "" when none fired.
func (r Result) ToolUsed() string {
	if r.Invocation == nil {
		return ""
	}
	return r.Invocation.Name
}

type Config struct {
	Classifier Classifier
	Historical tools.Tool
	Intraday   tools.Tool
	Logger     logging.Logger
}

// Agent is the tool-routing agent: one classification, at most one tool
// invocation, one composed answer per request. Stateless across requests.
type Agent struct {
	classifier Classifier
	historical tools.Tool
	intraday   tools.Tool
	logger     logging.Logger
}

func New(cfg Config) (*Agent, error) {
	if cfg.Classifier == nil {
		return nil, errors.New("agent: classifier is required")
	}
	if cfg.Historical == nil || cfg.Intraday == nil {
		return nil, errors.New("agent: both tools are required")
	}
	return &Agent{
		classifier: cfg.Classifier,
		historical: cfg.Historical,
		intraday:   cfg.Intraday,
		logger:     cfg.Logger,
	}, nil
}

// Run classifies the instruction, dispatches to the selected tool, and
// composes the answer. Tool failures arrive as result strings and flow into
// the answer; only classification failures return an error.
func (a *Agent) Run(ctx context.Context, instruction, tenantID string) (Result, error) {
	start := time.Now()
	decision, err := a.classifier.Classify(ctx, instruction)
	classifyDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return Result{}, err
	}
	routeDecisionsTotal.WithLabelValues(string(decision.Route)).Inc()

	switch decision.Route {
	case RouteHistorical:
		args := tools.Arguments{
			Ticker:    decision.Ticker,
			StartDate: decision.StartDate,
			EndDate:   decision.EndDate,
			TenantID:  tenantID,
		}
		result := a.invoke(ctx, a.historical, args)
		return Result{
			Answer:     composeHistoricalAnswer(args, result),
			Invocation: &ToolInvocation{Name: a.historical.Name(), Args: args, Result: result},
		}, nil

	case RouteIntraday:
		args := tools.Arguments{
			Ticker:   decision.Ticker,
			Interval: decision.Interval,
		}
		result := a.invoke(ctx, a.intraday, args)
		return Result{
			Answer:     composeIntradayAnswer(result),
			Invocation: &ToolInvocation{Name: a.intraday.Name(), Args: args, Result: result},
		}, nil

	default:
		answer := decision.Reply
		if strings.TrimSpace(answer) == "" {
			answer = "I can answer questions about historical pricing over a date range, or live intraday pricing. Could you rephrase your question with a ticker and either a date range or a real-time request?"
		}
		return Result{Answer: answer}, nil
	}
}

func (a *Agent) invoke(ctx context.Context, tool tools.Tool, args tools.Arguments) string {
	start := time.Now()
	result := tool.Invoke(ctx, args)
	toolDuration.WithLabelValues(tool.Name()).Observe(time.Since(start).Seconds())
	toolInvocationsTotal.WithLabelValues(tool.Name()).Inc()
	if a.logger != nil {
		a.logger.WithFields(logging.Fields{
			"tool":      tool.Name(),
			"ticker":    args.Ticker,
			"tenant_id": args.TenantID,
		}).Debug("Tool invoked")
	}
	return result
}

func composeHistoricalAnswer(args tools.Arguments, result string) string {
	ticker := args.Ticker
	if ticker == "" {
		ticker = "the requested instrument"
	}
	// The lead ends with a period: a trailing date-colon pair would read as
	// a price observation to the chart extractor.
	lead := fmt.Sprintf("Here is the daily pricing data for %s from %s to %s.", ticker, args.StartDate, args.EndDate)
	if rendered, ok := renderDailyRows(result); ok {
		return lead + "\n" + rendered
	}
	return lead + "\n" + result
}

func composeIntradayAnswer(result string) string {
	return result
}

// renderDailyRows turns the query service's row array into "date: $price"
// lines. Error strings and unexpected shapes fall through untouched.
func renderDailyRows(result string) (string, bool) {
	var rows []map[string]json.RawMessage
	if err := json.Unmarshal([]byte(result), &rows); err != nil || len(rows) == 0 {
		return "", false
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		date := stringField(row, "period_date")
		value, ok := priceField(row)
		if date == "" || !ok {
			return "", false
		}
		lines = append(lines, fmt.Sprintf("%s: $%s", date, strconv.FormatFloat(value, 'f', -1, 64)))
	}
	return strings.Join(lines, "\n"), true
}

func stringField(row map[string]json.RawMessage, key string) string {
	raw, ok := row[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// priceField reads the row's value, either nested under the data UDT column
// or flattened at the top level.
func priceField(row map[string]json.RawMessage) (float64, bool) {
	if raw, ok := row["data"]; ok {
		var nested struct {
			Value *float64 `json:"value"`
		}
		if err := json.Unmarshal(raw, &nested); err == nil && nested.Value != nil {
			return *nested.Value, true
		}
	}
	if raw, ok := row["value"]; ok {
		var v float64
		if err := json.Unmarshal(raw, &v); err == nil {
			return v, true
		}
	}
	return 0, false
}
