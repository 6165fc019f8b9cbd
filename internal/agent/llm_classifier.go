package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"pulsar/internal/tools"
	"pulsar/pkg/llm"
)

const systemPrompt = `You are a financial data assistant. You have two tools:
1. 'fetch_daily_data' for historical pricing over a date range (start/end dates).
2. 'fetch_realtime_data' for current, live, or intraday pricing (terms like 'now', 'current', 'real-time').
Always use the appropriate tool when asked about prices.
If the question is not about pricing data, answer directly without calling a tool.`

// LLMClassifier asks a chat model to pick a tool. The model only ever
// selects a route and extracts arguments; dispatch stays typed and local.
type LLMClassifier struct {
	provider    llm.Provider
	definitions []llm.Tool
}

func NewLLMClassifier(provider llm.Provider, toolset ...tools.Tool) *LLMClassifier {
	definitions := make([]llm.Tool, 0, len(toolset))
	for _, tool := range toolset {
		definitions = append(definitions, tool.Definition())
	}
	return &LLMClassifier{provider: provider, definitions: definitions}
}

// toolCallArgs mirrors the argument schema shared by both tool definitions.
// tenant_id is absent from the schemas; a model that emits one anyway is
// ignored here so request identity cannot be overridden from text.
type toolCallArgs struct {
	Ticker    string `json:"ticker"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Interval  string `json:"interval"`
}

func (lc *LLMClassifier) Classify(ctx context.Context, instruction string) (Decision, error) {
	completion, err := lc.provider.Complete(ctx, []llm.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: instruction},
	}, lc.definitions)
	if err != nil {
		return Decision{}, fmt.Errorf("classify instruction: %w", err)
	}

	if len(completion.ToolCalls) == 0 {
		return Decision{Route: RouteNone, Reply: completion.Content}, nil
	}

	call := completion.ToolCalls[0]
	var args toolCallArgs
	if call.Arguments != "" {
		if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
			return Decision{}, fmt.Errorf("parse %s arguments: %w", call.Name, err)
		}
	}

	switch call.Name {
	case tools.NameHistorical:
		return Decision{
			Route:     RouteHistorical,
			Ticker:    args.Ticker,
			StartDate: args.StartDate,
			EndDate:   args.EndDate,
		}, nil
	case tools.NameIntraday:
		return Decision{
			Route:    RouteIntraday,
			Ticker:   args.Ticker,
			Interval: args.Interval,
		}, nil
	default:
		// Names outside the closed set are never dispatched.
		return Decision{Route: RouteNone, Reply: completion.Content}, nil
	}
}
