package usecase

import (
	"sort"
	"time"

	"github.com/secmon-lab/visastat/pkg/domain/model"
)

// SelectRange returns the dates of series within [start, end] inclusive as an
// ascending, index-aligned chart series. Dates without an entry are absent.
// A start after end yields an empty series.
func SelectRange(series model.LocationSeries, start, end time.Time) *model.ChartSeries {
	type entry struct {
		date  time.Time
		count model.DailyCount
	}

	entries := make([]entry, 0, len(series))
	for key, count := range series {
		date, err := model.ParseDate(key)
		if err != nil {
			continue
		}
		if date.Before(start) || date.After(end) {
			continue
		}
		entries = append(entries, entry{date: date, count: count})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].date.Before(entries[j].date)
	})

	result := model.NewChartSeries(len(entries))
	for _, e := range entries {
		result.Append(e.date, e.count)
	}
	return result
}

// LastNWeeks returns the n most recent dates, newest first. These are the n
// most recent dated entries, not calendar weeks. dates is not modified.
func LastNWeeks(dates []time.Time, n int) []time.Time {
	if n <= 0 {
		return []time.Time{}
	}

	sorted := make([]time.Time, len(dates))
	copy(sorted, dates)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].After(sorted[j])
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
