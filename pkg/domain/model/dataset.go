package model

import (
	"sort"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/visastat/pkg/domain/types"
)

// DailyCount holds the number of approved and rejected applications for one date
type DailyCount struct {
	Approved int `json:"approved" firestore:"approved"`
	Rejected int `json:"rejected" firestore:"rejected"`
}

// Validate checks that both counts are non-negative
func (c DailyCount) Validate() error {
	if c.Approved < 0 || c.Rejected < 0 {
		return goerr.New("counts must be non-negative",
			goerr.V("approved", c.Approved),
			goerr.V("rejected", c.Rejected))
	}
	return nil
}

// LocationSeries maps an ISO calendar date (2006-01-02) to its daily count.
// Keys are unique and carry no order.
type LocationSeries map[string]DailyCount

// Dates returns the parsed dates of the series in no particular order.
// Keys that are not valid dates are skipped.
func (s LocationSeries) Dates() []time.Time {
	dates := make([]time.Time, 0, len(s))
	for key := range s {
		d, err := ParseDate(key)
		if err != nil {
			continue
		}
		dates = append(dates, d)
	}
	return dates
}

// Validate validates every date key and count of the series
func (s LocationSeries) Validate() error {
	for key, count := range s {
		if _, err := ParseDate(key); err != nil {
			return goerr.Wrap(err, "invalid date key", goerr.V("date", key))
		}
		if err := count.Validate(); err != nil {
			return goerr.Wrap(err, "invalid daily count", goerr.V("date", key))
		}
	}
	return nil
}

// Dataset maps a location name to its series
type Dataset map[types.Location]LocationSeries

// Validate validates every location series of the dataset
func (d Dataset) Validate() error {
	for location, series := range d {
		if err := location.Validate(); err != nil {
			return goerr.Wrap(err, "invalid location")
		}
		if err := series.Validate(); err != nil {
			return goerr.Wrap(err, "invalid location series", goerr.V("location", location))
		}
	}
	return nil
}

// Locations returns the location names sorted alphabetically
func (d Dataset) Locations() []types.Location {
	locations := make([]types.Location, 0, len(d))
	for location := range d {
		locations = append(locations, location)
	}
	sort.Slice(locations, func(i, j int) bool {
		return locations[i] < locations[j]
	})
	return locations
}
