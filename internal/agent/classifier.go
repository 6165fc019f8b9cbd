package agent

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Route is the closed set of dispatch targets.
type Route string

const (
	RouteNone       Route = "none"
	RouteHistorical Route = "historical"
	RouteIntraday   Route = "intraday"
)

// Decision is a classifier's verdict: which tool (if any) to run and the
// arguments extracted from the instruction text. Tenant identity is never a
// classifier output; the agent threads it in from the request.
type Decision struct {
	Route     Route
	Ticker    string
	StartDate string
	EndDate   string
	Interval  string

	// Reply optionally carries a direct answer for RouteNone decisions
	// (LLM classifiers produce one; the rule classifier does not).
	Reply string
}

// Classifier maps a natural-language instruction to a routing decision.
type Classifier interface {
	Classify(ctx context.Context, instruction string) (Decision, error)
}

var (
	isoDatePattern  = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	realtimePattern = regexp.MustCompile(`(?i)\b(?:now|current|currently|live|real[- ]?time|intraday)\b`)
	tickerPattern   = regexp.MustCompile(`\b[A-Z]{1,5}\b`)
	intervalPattern = regexp.MustCompile(`(?i)\b(1|5|15|30|60)[ -]?min(?:ute)?s?\b`)
)

// Words that look like tickers but never are.
var tickerStopwords = map[string]bool{
	"A": true, "I": true, "THE": true, "WHAT": true, "WHATS": true, "HOW": true,
	"IS": true, "WAS": true, "ARE": true, "FOR": true, "FROM": true, "TO": true,
	"ON": true, "AT": true, "OF": true, "IN": true, "AND": true, "OR": true,
	"PRICE": true, "STOCK": true, "DAILY": true, "DATA": true, "SHOW": true,
	"GET": true, "ME": true, "USD": true, "UTC": true, "VS": true, "NOW": true,
	"LIVE": true,
}

// RuleClassifier routes by lexical inspection of the instruction: explicit
// ISO dates imply a historical range, real-time wording implies intraday,
// anything else routes to no tool.
type RuleClassifier struct{}

func NewRuleClassifier() *RuleClassifier {
	return &RuleClassifier{}
}

func (rc *RuleClassifier) Classify(_ context.Context, instruction string) (Decision, error) {
	dates := isoDatePattern.FindAllString(instruction, -1)
	if len(dates) > 0 {
		sorted := append([]string(nil), dates...)
		sort.Strings(sorted)
		return Decision{
			Route:     RouteHistorical,
			Ticker:    extractTicker(instruction),
			StartDate: sorted[0],
			EndDate:   sorted[len(sorted)-1],
		}, nil
	}

	if realtimePattern.MatchString(instruction) {
		return Decision{
			Route:    RouteIntraday,
			Ticker:   extractTicker(instruction),
			Interval: extractInterval(instruction),
		}, nil
	}

	return Decision{Route: RouteNone}, nil
}

func extractTicker(instruction string) string {
	for _, token := range tickerPattern.FindAllString(instruction, -1) {
		if !tickerStopwords[token] {
			return token
		}
	}
	return ""
}

func extractInterval(instruction string) string {
	m := intervalPattern.FindStringSubmatch(instruction)
	if m == nil {
		return ""
	}
	return fmt.Sprintf("%smin", strings.TrimSpace(m[1]))
}
