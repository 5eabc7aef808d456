package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/visastat/pkg/domain/interfaces"
	"github.com/secmon-lab/visastat/pkg/domain/model"
	"github.com/secmon-lab/visastat/pkg/domain/types"
	"github.com/secmon-lab/visastat/pkg/repository"
)

const (
	DefaultLocation types.Location = "Ireland"
	DefaultWeeks                   = 3
)

// User-facing validation messages
const (
	MsgSelectDate       = "Please select a date"
	MsgInvalidDate      = "Please enter a date as YYYY-MM-DD"
	MsgFutureDate       = "Selected date cannot be in the future"
	MsgUnknownLocation  = "Please select a known location"
	MsgLoadFailed       = "Failed to load data. Please try again later."
	MsgDatasetLoading   = "Loading data..."
	MsgEmptyApplication = "Please enter an application ID"
)

// DashboardConfig holds configuration for Dashboard use case
type DashboardConfig struct {
	defaultLocation types.Location
	defaultWeeks    int
	now             func() time.Time
}

// DashboardOption is a functional option for configuring Dashboard
type DashboardOption func(*DashboardConfig)

// WithDefaultLocation sets the location preferred on first view
func WithDefaultLocation(location types.Location) DashboardOption {
	return func(c *DashboardConfig) {
		c.defaultLocation = location
	}
}

// WithDefaultWeeks sets how many recent dated entries the first view shows
func WithDefaultWeeks(n int) DashboardOption {
	return func(c *DashboardConfig) {
		c.defaultWeeks = n
	}
}

// WithClock sets the clock used to determine the current calendar date
func WithClock(now func() time.Time) DashboardOption {
	return func(c *DashboardConfig) {
		c.now = now
	}
}

// NewDashboardConfig creates a new DashboardConfig with default values and optional settings
func NewDashboardConfig(opts ...DashboardOption) *DashboardConfig {
	config := &DashboardConfig{
		defaultLocation: DefaultLocation,
		defaultWeeks:    DefaultWeeks,
		now:             time.Now,
	}

	for _, opt := range opts {
		opt(config)
	}

	return config
}

// LoadState is the lifecycle state of the dataset
type LoadState int

const (
	LoadStatePending LoadState = iota
	LoadStateReady
	LoadStateFailed
)

// String returns the string representation of the state
func (s LoadState) String() string {
	switch s {
	case LoadStatePending:
		return "pending"
	case LoadStateReady:
		return "ready"
	case LoadStateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// DashboardView is everything needed to draw the dashboard page
type DashboardView struct {
	Locations []types.Location
	Location  types.Location
	Start     time.Time
	End       time.Time
	Series    *model.ChartSeries
}

// Dashboard owns the dataset store and computes chart views from it
type Dashboard struct {
	source interfaces.DatasetSource
	config *DashboardConfig

	mu      sync.RWMutex
	state   LoadState
	store   interfaces.DatasetStore
	loadErr error
}

// NewDashboard creates a dashboard whose store is built by Load from source
func NewDashboard(source interfaces.DatasetSource, config *DashboardConfig) *Dashboard {
	if config == nil {
		config = NewDashboardConfig()
	}
	return &Dashboard{
		source: source,
		config: config,
		state:  LoadStatePending,
	}
}

// NewDashboardWithStore creates a dashboard over an already constructed store
func NewDashboardWithStore(store interfaces.DatasetStore, config *DashboardConfig) *Dashboard {
	d := NewDashboard(nil, config)
	d.store = store
	d.state = LoadStateReady
	return d
}

// Load fetches the dataset once and builds the store. A dashboard that is
// already ready is left untouched. A failure leaves it uninitialized.
func (d *Dashboard) Load(ctx context.Context) error {
	d.mu.RLock()
	ready := d.state == LoadStateReady
	d.mu.RUnlock()
	if ready {
		return nil
	}

	if d.source == nil {
		return d.fail(goerr.New("dataset source is not configured"))
	}

	dataset, err := d.source.Load(ctx)
	if err != nil {
		return d.fail(goerr.Wrap(err, "failed to load dataset"))
	}

	store := repository.NewMemory(dataset)

	d.mu.Lock()
	d.store = store
	d.state = LoadStateReady
	d.loadErr = nil
	d.mu.Unlock()

	ctxlog.From(ctx).Info("Dataset ready", "locations", len(dataset))
	return nil
}

func (d *Dashboard) fail(err error) error {
	d.mu.Lock()
	d.state = LoadStateFailed
	d.loadErr = err
	d.mu.Unlock()
	return err
}

// State returns the load state and, when failed, the load error
func (d *Dashboard) State() (LoadState, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state, d.loadErr
}

// Today returns the current calendar date
func (d *Dashboard) Today() time.Time {
	return model.CalendarDate(d.config.now())
}

func (d *Dashboard) readyStore() (interfaces.DatasetStore, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.state != LoadStateReady {
		return nil, goerr.Wrap(model.ErrDatasetNotLoaded, "dashboard is not ready",
			goerr.V("state", d.state.String()))
	}
	return d.store, nil
}

// Locations returns every location of the dataset, sorted
func (d *Dashboard) Locations(ctx context.Context) ([]types.Location, error) {
	store, err := d.readyStore()
	if err != nil {
		return nil, err
	}

	locations, err := store.Locations(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list locations")
	}
	return locations, nil
}

// DefaultLocation returns the preferred location when present, otherwise the first one
func (d *Dashboard) DefaultLocation(locations []types.Location) (types.Location, error) {
	if len(locations) == 0 {
		return "", goerr.New("dataset has no locations")
	}
	for _, location := range locations {
		if location == d.config.defaultLocation {
			return location, nil
		}
	}
	return locations[0], nil
}

// DefaultView computes the first view of location over its most recent
// dated entries. An empty location selects the default one.
func (d *Dashboard) DefaultView(ctx context.Context, location types.Location) (*DashboardView, error) {
	locations, err := d.Locations(ctx)
	if err != nil {
		return nil, err
	}

	if location == "" {
		if location, err = d.DefaultLocation(locations); err != nil {
			return nil, err
		}
	}

	series, err := d.series(ctx, location)
	if err != nil {
		return nil, err
	}

	recent := LastNWeeks(series.Dates(), d.config.defaultWeeks)
	if len(recent) == 0 {
		today := d.Today()
		return &DashboardView{
			Locations: locations,
			Location:  location,
			Start:     today,
			End:       today,
			Series:    model.NewChartSeries(0),
		}, nil
	}

	start, end := recent[len(recent)-1], recent[0]
	return &DashboardView{
		Locations: locations,
		Location:  location,
		Start:     start,
		End:       end,
		Series:    SelectRange(series, start, end),
	}, nil
}

// Update validates the start date and computes the view from start to today.
// Validation failures carry model.ErrTagValidation and leave no state behind.
func (d *Dashboard) Update(ctx context.Context, location types.Location, startInput string) (*DashboardView, error) {
	if startInput == "" {
		return nil, goerr.New(MsgSelectDate, goerr.T(model.ErrTagValidation))
	}

	start, err := model.ParseDate(startInput)
	if err != nil {
		return nil, goerr.New(MsgInvalidDate,
			goerr.T(model.ErrTagValidation),
			goerr.V("start", startInput))
	}

	today := d.Today()
	if start.After(today) {
		return nil, goerr.New(MsgFutureDate,
			goerr.T(model.ErrTagValidation),
			goerr.V("start", startInput),
			goerr.V("today", model.FormatDate(today)))
	}

	return d.View(ctx, location, start, today)
}

// Range parses an explicit [start, end] range from user input and computes
// its view. Unlike Update, end may lie in the future.
func (d *Dashboard) Range(ctx context.Context, location types.Location, startInput, endInput string) (*DashboardView, error) {
	start, err := model.ParseDate(startInput)
	if err != nil {
		return nil, goerr.New(MsgInvalidDate,
			goerr.T(model.ErrTagValidation),
			goerr.V("start", startInput))
	}
	end, err := model.ParseDate(endInput)
	if err != nil {
		return nil, goerr.New(MsgInvalidDate,
			goerr.T(model.ErrTagValidation),
			goerr.V("end", endInput))
	}

	return d.View(ctx, location, start, end)
}

// View computes the view of location over [start, end]. An empty location
// selects the default one.
func (d *Dashboard) View(ctx context.Context, location types.Location, start, end time.Time) (*DashboardView, error) {
	locations, err := d.Locations(ctx)
	if err != nil {
		return nil, err
	}

	if location == "" {
		if location, err = d.DefaultLocation(locations); err != nil {
			return nil, err
		}
	}

	series, err := d.series(ctx, location)
	if err != nil {
		return nil, err
	}

	return &DashboardView{
		Locations: locations,
		Location:  location,
		Start:     start,
		End:       end,
		Series:    SelectRange(series, start, end),
	}, nil
}

func (d *Dashboard) series(ctx context.Context, location types.Location) (model.LocationSeries, error) {
	store, err := d.readyStore()
	if err != nil {
		return nil, err
	}

	series, err := store.GetSeries(ctx, location)
	if err != nil {
		if errors.Is(err, model.ErrLocationNotFound) {
			return nil, goerr.New(MsgUnknownLocation,
				goerr.T(model.ErrTagValidation),
				goerr.V("location", location))
		}
		return nil, goerr.Wrap(err, "failed to get location series",
			goerr.V("location", location))
	}
	return series, nil
}
