// Package chart extracts a plottable time series from an answer's free text.
// The data is derived lexically, not taken from a structured tool result, so
// it is best-effort: no matches simply means no chart.
package chart

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Point is one extracted (date, price) observation. Date keeps its original
// string form, e.g. "2025-01-20" or "2025-01-21 19:55:00".
type Point struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

// Series is an extracted time series with summary statistics.
type Series struct {
	Points []Point `json:"points"`
	Latest float64 `json:"latest"`
	First  float64 `json:"first"`
	High   float64 `json:"high"`
}

var (
	// "2025-01-20: $230.50" or "2025-01-21 19:55:00 233.0"
	datePricePattern = regexp.MustCompile(`(\d{4}-\d{2}-\d{2}(?:\s\d{2}:\d{2}:\d{2})?)[:\s]+\$?(\d+\.?\d*)`)
	// "$230.50 on 2025-01-20"
	priceDatePattern = regexp.MustCompile(`\$?(\d+\.?\d*)\s+(?:on|for|at|as of)\s+(\d{4}-\d{2}-\d{2}(?:\s\d{2}:\d{2}:\d{2})?)`)
)

// Extract scans text for (date, price) pairs and returns the ordered series,
// or ok=false when nothing chartable is present.
//
// Pairs are sorted by the raw date string. That is chronological only while
// every date shares the ISO layout; mixed formats sort silently wrong.
func Extract(text string) (Series, bool) {
	var points []Point
	for _, m := range datePricePattern.FindAllStringSubmatch(text, -1) {
		price, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			continue
		}
		points = append(points, Point{Date: m[1], Price: price})
	}

	if len(points) == 0 {
		for _, m := range priceDatePattern.FindAllStringSubmatch(text, -1) {
			price, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				continue
			}
			points = append(points, Point{Date: m[2], Price: price})
		}
	}

	if len(points) == 0 {
		return Series{}, false
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})

	series := Series{Points: points}
	series.Latest = points[len(points)-1].Price
	series.First = points[0].Price
	series.High = points[0].Price
	for _, p := range points[1:] {
		if p.Price > series.High {
			series.High = p.Price
		}
	}
	return series, true
}

// FormatPoints renders points one per line as "<date>: $<price>", the same
// shape Extract recognizes, so formatting and re-extracting round-trips.
func FormatPoints(points []Point) string {
	lines := make([]string, 0, len(points))
	for _, p := range points {
		lines = append(lines, fmt.Sprintf("%s: $%s", p.Date, strconv.FormatFloat(p.Price, 'f', -1, 64)))
	}
	return strings.Join(lines, "\n")
}
