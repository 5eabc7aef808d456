package usecase

import (
	"context"
	"time"

	"github.com/secmon-lab/visastat/pkg/domain/model"
	"github.com/secmon-lab/visastat/pkg/domain/types"
)

// DashboardUseCase defines the interface for chart view computation
type DashboardUseCase interface {
	// Load fetches the dataset and builds the store
	Load(ctx context.Context) error

	// State returns the load state and, when failed, the load error
	State() (LoadState, error)

	// Today returns the current calendar date
	Today() time.Time

	// Locations returns every location of the dataset, sorted
	Locations(ctx context.Context) ([]types.Location, error)

	// DefaultLocation returns the preferred location among locations
	DefaultLocation(locations []types.Location) (types.Location, error)

	// DefaultView computes the first view shown on page load
	DefaultView(ctx context.Context, location types.Location) (*DashboardView, error)

	// Update validates a user-selected start date and computes the view up to today
	Update(ctx context.Context, location types.Location, startInput string) (*DashboardView, error)

	// Range computes the view of an explicit range given as user input
	Range(ctx context.Context, location types.Location, startInput, endInput string) (*DashboardView, error)

	// View computes the view of a location over an explicit date range
	View(ctx context.Context, location types.Location, start, end time.Time) (*DashboardView, error)
}

// StatusLookupUseCase defines the interface for single application lookups
type StatusLookupUseCase interface {
	// IsConfigured returns true if a status endpoint is available
	IsConfigured() bool

	// Check validates the identifier and performs one lookup
	Check(ctx context.Context, input string) (*model.StatusResult, error)
}

var (
	_ DashboardUseCase    = (*Dashboard)(nil)
	_ StatusLookupUseCase = (*StatusLookup)(nil)
)
