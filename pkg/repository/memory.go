package repository

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/visastat/pkg/domain/interfaces"
	"github.com/secmon-lab/visastat/pkg/domain/model"
	"github.com/secmon-lab/visastat/pkg/domain/types"
)

// Memory implements DatasetStore over an in-memory dataset.
// The dataset is copied on construction and never mutated afterwards, so
// concurrent readers need no locking.
type Memory struct {
	dataset   model.Dataset
	locations []types.Location
}

// NewMemory creates a new memory store holding a copy of dataset
func NewMemory(dataset model.Dataset) interfaces.DatasetStore {
	copied := make(model.Dataset, len(dataset))
	for location, series := range dataset {
		copied[location] = copySeries(series)
	}

	return &Memory{
		dataset:   copied,
		locations: copied.Locations(),
	}
}

// Locations returns every location name, sorted
func (m *Memory) Locations(ctx context.Context) ([]types.Location, error) {
	result := make([]types.Location, len(m.locations))
	copy(result, m.locations)
	return result, nil
}

// GetSeries retrieves the series of a location
func (m *Memory) GetSeries(ctx context.Context, location types.Location) (model.LocationSeries, error) {
	if location == "" {
		return nil, goerr.New("location is empty")
	}

	series, exists := m.dataset[location]
	if !exists {
		return nil, goerr.Wrap(model.ErrLocationNotFound, "failed to get series",
			goerr.V("location", location))
	}

	// Return a copy to prevent external modification
	return copySeries(series), nil
}

func copySeries(series model.LocationSeries) model.LocationSeries {
	result := make(model.LocationSeries, len(series))
	for date, count := range series {
		result[date] = count
	}
	return result
}
