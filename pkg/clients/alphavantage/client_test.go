package alphavantage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const sampleIntraday = `{
	"Meta Data": {
		"1. Information": "Intraday (5min) open, high, low, close prices and volume",
		"2. Symbol": "IBM"
	},
	"Time Series (5min)": {
		"2025-01-21 19:55:00": {"1. open": "232.9", "2. high": "233.1", "3. low": "232.8", "4. close": "233.00", "5. volume": "1200"},
		"2025-01-21 19:50:00": {"1. open": "232.5", "2. high": "232.9", "3. low": "232.4", "4. close": "232.80", "5. volume": "900"}
	}
}`

func TestIntraday(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("function") != "TIME_SERIES_INTRADAY" {
			t.Errorf("unexpected function %s", q.Get("function"))
		}
		if q.Get("symbol") != "IBM" || q.Get("interval") != "5min" {
			t.Errorf("unexpected query %v", q)
		}
		if q.Get("apikey") != "testkey" {
			t.Errorf("expected apikey forwarded, got %s", q.Get("apikey"))
		}
		_, _ = w.Write([]byte(sampleIntraday))
	}))
	defer srv.Close()

	client := NewClient("testkey", WithBaseURL(srv.URL))
	data, err := client.Intraday(context.Background(), "IBM", "5min")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data.Series) != 2 {
		t.Fatalf("expected 2 bars, got %d", len(data.Series))
	}
	if bar := data.Series["2025-01-21 19:55:00"]; bar.Close != "233.00" {
		t.Fatalf("unexpected close %q", bar.Close)
	}
}

func TestIntradayMissingSeries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Note": "API call frequency limit reached."}`))
	}))
	defer srv.Close()

	client := NewClient("", WithBaseURL(srv.URL))
	data, err := client.Intraday(context.Background(), "IBM", "5min")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.Series != nil {
		t.Fatal("expected nil series")
	}
	if data.Note == "" {
		t.Fatal("expected upstream note surfaced")
	}
}

func TestIntradayDefaultsToDemoKey(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("apikey")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient("  ", WithBaseURL(srv.URL))
	if _, err := client.Intraday(context.Background(), "IBM", "5min"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotKey != DemoAPIKey {
		t.Fatalf("expected demo key fallback, got %q", gotKey)
	}
}

func TestIntradayUnreachable(t *testing.T) {
	client := NewClient("k", WithBaseURL("http://127.0.0.1:1"))
	if _, err := client.Intraday(context.Background(), "IBM", "5min"); err == nil {
		t.Fatal("expected transport error")
	}
}

func TestIsValidInterval(t *testing.T) {
	for _, interval := range ValidIntervals {
		if !IsValidInterval(interval) {
			t.Errorf("expected %s valid", interval)
		}
	}
	if IsValidInterval("2min") {
		t.Error("expected 2min invalid")
	}
}
