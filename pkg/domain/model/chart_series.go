package model

import "time"

// ChartSeries holds index-aligned chart input ordered by ascending date
type ChartSeries struct {
	Dates    []time.Time `json:"-"`
	Labels   []string    `json:"labels"`
	Approved []int       `json:"approved"`
	Rejected []int       `json:"rejected"`
}

// NewChartSeries creates an empty series with non-nil sequences
func NewChartSeries(capacity int) *ChartSeries {
	return &ChartSeries{
		Dates:    make([]time.Time, 0, capacity),
		Labels:   make([]string, 0, capacity),
		Approved: make([]int, 0, capacity),
		Rejected: make([]int, 0, capacity),
	}
}

// Append adds one date to the end of every sequence
func (s *ChartSeries) Append(date time.Time, count DailyCount) {
	s.Dates = append(s.Dates, date)
	s.Labels = append(s.Labels, FormatLabel(date))
	s.Approved = append(s.Approved, count.Approved)
	s.Rejected = append(s.Rejected, count.Rejected)
}

// Len returns the number of dates in the series
func (s *ChartSeries) Len() int {
	return len(s.Labels)
}

// IsEmpty returns true if the series has no dates
func (s *ChartSeries) IsEmpty() bool {
	return s.Len() == 0
}
