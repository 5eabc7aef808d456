package interfaces

//go:generate moq -out mocks/dataset_mock.go -pkg mocks . DatasetStore DatasetSource

import (
	"context"

	"github.com/secmon-lab/visastat/pkg/domain/model"
	"github.com/secmon-lab/visastat/pkg/domain/types"
)

// DatasetStore provides read access to a loaded dataset
type DatasetStore interface {
	// Locations returns every location name, sorted
	Locations(ctx context.Context) ([]types.Location, error)

	// GetSeries returns the series of one location
	GetSeries(ctx context.Context, location types.Location) (model.LocationSeries, error)
}

// DatasetSource fetches the whole dataset once
type DatasetSource interface {
	Load(ctx context.Context) (model.Dataset, error)

	// Close releases the underlying connection
	Close() error
}
