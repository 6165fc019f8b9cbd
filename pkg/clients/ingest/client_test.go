package ingest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIngestBatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/ingest/batch" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var batch BatchRequest
		if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
			t.Fatalf("decode batch: %v", err)
		}
		if batch.TenantID != "AAPL" || batch.Periodicity != "DAILY" {
			t.Errorf("unexpected batch header %+v", batch)
		}
		if len(batch.Data) != 1 || batch.Data[0].FieldID != "CLOSE" {
			t.Errorf("unexpected batch data %+v", batch.Data)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	err := client.IngestBatch(context.Background(), BatchRequest{
		TenantID:    "AAPL",
		Periodicity: "DAILY",
		Data: []DataPoint{{
			TenantID:     "AAPL",
			InstrumentID: "AAPL",
			FieldID:      "CLOSE",
			PeriodDate:   "2025-01-20",
			Data:         ValueData{Value: 230.5, ReportTime: "2025-01-20T16:00:00Z"},
		}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestIngestBatchFailureStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad payload", http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	if err := client.IngestBatch(context.Background(), BatchRequest{TenantID: "X"}); err == nil {
		t.Fatal("expected error on 400")
	}
}
