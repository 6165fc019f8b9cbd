package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"pulsar/internal/tools"
)

type staticClassifier struct {
	decision Decision
	err      error
}

func (s staticClassifier) Classify(context.Context, string) (Decision, error) {
	return s.decision, s.err
}

func newTestAgent(t *testing.T, classifier Classifier, historical, intraday tools.Tool) *Agent {
	t.Helper()
	a, err := New(Config{Classifier: classifier, Historical: historical, Intraday: intraday})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return a
}

func TestRunHistoricalThreadsTenantFromRequest(t *testing.T) {
	historical := &staticTool{name: tools.NameHistorical, result: `[{"period_date":"2025-01-20","data":{"value":230.5}}]`}
	intraday := &staticTool{name: tools.NameIntraday}
	a := newTestAgent(t, staticClassifier{decision: Decision{
		Route:     RouteHistorical,
		Ticker:    "AAPL",
		StartDate: "2025-01-20",
		EndDate:   "2025-01-26",
	}}, historical, intraday)

	result, err := a.Run(context.Background(), "AAPL last week", "ACME")
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if historical.calls != 1 {
		t.Fatalf("historical tool invoked %d times", historical.calls)
	}
	if intraday.calls != 0 {
		t.Errorf("intraday tool must not fire on historical route")
	}
	if historical.gotArgs.TenantID != "ACME" {
		t.Errorf("tenant not threaded from request: %q", historical.gotArgs.TenantID)
	}
	if result.ToolUsed() != tools.NameHistorical {
		t.Errorf("ToolUsed = %q", result.ToolUsed())
	}
	if !strings.Contains(result.Answer, "2025-01-20: $230.5") {
		t.Errorf("rows not rendered into answer:\n%s", result.Answer)
	}
}

func TestRunHistoricalFallsBackToRawResult(t *testing.T) {
	historical := &staticTool{name: tools.NameHistorical, result: "Error fetching daily data: connection refused"}
	a := newTestAgent(t, staticClassifier{decision: Decision{Route: RouteHistorical, Ticker: "MSFT"}},
		historical, &staticTool{name: tools.NameIntraday})

	result, err := a.Run(context.Background(), "MSFT", "DEFAULT")
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !strings.Contains(result.Answer, "Error fetching daily data") {
		t.Errorf("tool error string should surface in answer:\n%s", result.Answer)
	}
}

func TestRunIntraday(t *testing.T) {
	intraday := &staticTool{name: tools.NameIntraday, result: "Real-time data for TSLA (5min intervals):\n2025-01-24 19:55:00: $250.75"}
	a := newTestAgent(t, staticClassifier{decision: Decision{Route: RouteIntraday, Ticker: "TSLA", Interval: "5min"}},
		&staticTool{name: tools.NameHistorical}, intraday)

	result, err := a.Run(context.Background(), "TSLA now", "DEFAULT")
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if intraday.gotArgs.Ticker != "TSLA" || intraday.gotArgs.Interval != "5min" {
		t.Errorf("unexpected args: %+v", intraday.gotArgs)
	}
	if intraday.gotArgs.TenantID != "" {
		t.Errorf("intraday invocation must not carry tenant identity")
	}
	if result.Answer != intraday.result {
		t.Errorf("intraday answer should pass through verbatim:\n%s", result.Answer)
	}
	if result.ToolUsed() != tools.NameIntraday {
		t.Errorf("ToolUsed = %q", result.ToolUsed())
	}
}

func TestRunNoRoute(t *testing.T) {
	a := newTestAgent(t, staticClassifier{decision: Decision{Route: RouteNone, Reply: "I handle pricing questions."}},
		&staticTool{name: tools.NameHistorical}, &staticTool{name: tools.NameIntraday})

	result, err := a.Run(context.Background(), "hi", "DEFAULT")
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.Invocation != nil {
		t.Errorf("no tool should fire: %+v", result.Invocation)
	}
	if result.Answer != "I handle pricing questions." {
		t.Errorf("classifier reply not used: %q", result.Answer)
	}
	if result.ToolUsed() != "" {
		t.Errorf("ToolUsed should be empty, got %q", result.ToolUsed())
	}
}

func TestRunNoRouteDefaultReply(t *testing.T) {
	a := newTestAgent(t, staticClassifier{decision: Decision{Route: RouteNone}},
		&staticTool{name: tools.NameHistorical}, &staticTool{name: tools.NameIntraday})

	result, err := a.Run(context.Background(), "hi", "DEFAULT")
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.Answer == "" {
		t.Error("empty reply should fall back to a canned answer")
	}
}

func TestRunClassifierErrorEscalates(t *testing.T) {
	a := newTestAgent(t, staticClassifier{err: errors.New("model unavailable")},
		&staticTool{name: tools.NameHistorical}, &staticTool{name: tools.NameIntraday})

	if _, err := a.Run(context.Background(), "AAPL", "DEFAULT"); err == nil {
		t.Fatal("classification failure must escalate to the caller")
	}
}

func TestNewValidatesDependencies(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Error("expected error without classifier")
	}
	if _, err := New(Config{Classifier: staticClassifier{}}); err == nil {
		t.Error("expected error without tools")
	}
}

func TestRenderDailyRows(t *testing.T) {
	rendered, ok := renderDailyRows(`[
		{"tenant_id":"DEFAULT","instrument_id":"AAPL","field_id":"CLOSE","period_date":"2025-01-20","data":{"value":230.5,"report_time":"2025-01-20T21:00:00Z"}},
		{"tenant_id":"DEFAULT","instrument_id":"AAPL","field_id":"CLOSE","period_date":"2025-01-21","data":{"value":233,"report_time":"2025-01-21T21:00:00Z"}}
	]`)
	if !ok {
		t.Fatal("expected rows to render")
	}
	want := "2025-01-20: $230.5\n2025-01-21: $233"
	if rendered != want {
		t.Errorf("rendered = %q, want %q", rendered, want)
	}

	if _, ok := renderDailyRows("Error fetching daily data: boom"); ok {
		t.Error("error strings must not render")
	}
	if _, ok := renderDailyRows("[]"); ok {
		t.Error("empty arrays must not render")
	}
	if _, ok := renderDailyRows(`[{"period_date":"2025-01-20"}]`); ok {
		t.Error("rows without values must not render")
	}
}
