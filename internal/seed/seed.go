// Package seed generates the demo market dataset loaded by the ingest CLI.
package seed

import (
	"time"

	"pulsar/pkg/clients/ingest"
)

// Instrument is one seeded ticker with its opening price.
type Instrument struct {
	Ticker    string
	BasePrice float64
}

// DefaultInstruments is the demo universe: the large-cap tech names used
// throughout the examples and documentation.
var DefaultInstruments = []Instrument{
	{"AAPL", 230.50},
	{"MSFT", 415.20},
	{"GOOGL", 190.15},
	{"AMZN", 205.80},
	{"NVDA", 135.25},
	{"META", 580.40},
	{"TSLA", 250.75},
}

const (
	// DefaultStartDate anchors the demo series.
	DefaultStartDate = "2025-01-20"
	// DefaultDays is the demo series length.
	DefaultDays = 7
	// dailyDrift is the per-day price increment in the demo series.
	dailyDrift = 2.5
)

// DailyCloses builds one CLOSE data point per instrument per day: a linear
// ramp of dailyDrift from each instrument's base price. Deterministic, so
// reseeding produces the same dataset.
func DailyCloses(tenantID, startDate string, days int, instruments []Instrument) ([]ingest.DataPoint, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil, err
	}

	points := make([]ingest.DataPoint, 0, len(instruments)*days)
	for _, inst := range instruments {
		for day := 0; day < days; day++ {
			date := start.AddDate(0, 0, day)
			points = append(points, ingest.DataPoint{
				TenantID:     tenantID,
				InstrumentID: inst.Ticker,
				FieldID:      "CLOSE",
				PeriodDate:   date.Format("2006-01-02"),
				Data: ingest.ValueData{
					Value:      inst.BasePrice + dailyDrift*float64(day),
					ReportTime: date.Format("2006-01-02") + "T21:00:00Z",
				},
			})
		}
	}
	return points, nil
}
