package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/visastat/pkg/domain/interfaces"
	"github.com/secmon-lab/visastat/pkg/domain/types"
	"github.com/secmon-lab/visastat/pkg/repository"
	"github.com/secmon-lab/visastat/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Dataset holds dataset source and default view configuration
type Dataset struct {
	Path            string
	DefaultLocation string
	DefaultWeeks    int
}

// Flags returns CLI flags for Dataset configuration
func (d *Dataset) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "dataset",
			Usage:       "Dataset JSON file path or http(s) URL",
			Category:    "Dataset",
			Value:       "data.json",
			Sources:     cli.EnvVars("VISASTAT_DATASET"),
			Destination: &d.Path,
		},
		&cli.StringFlag{
			Name:        "default-location",
			Usage:       "Location shown first when present in the dataset",
			Category:    "Dataset",
			Value:       usecase.DefaultLocation.String(),
			Sources:     cli.EnvVars("VISASTAT_DEFAULT_LOCATION"),
			Destination: &d.DefaultLocation,
		},
		&cli.IntFlag{
			Name:        "default-weeks",
			Usage:       "Number of most recent dated entries shown first",
			Category:    "Dataset",
			Value:       usecase.DefaultWeeks,
			Sources:     cli.EnvVars("VISASTAT_DEFAULT_WEEKS"),
			Destination: &d.DefaultWeeks,
		},
	}
}

// Configure returns the dataset source. Firestore is used when it is
// configured, otherwise the JSON file or URL.
func (d *Dataset) Configure(ctx context.Context, fs *Firestore) (interfaces.DatasetSource, error) {
	logger := ctxlog.From(ctx)

	if fs != nil && fs.IsConfigured() {
		logger.Info("Reading dataset from firestore", "firestore", fs)
		repo, err := fs.Configure(ctx)
		if err != nil {
			return nil, err
		}
		return repo, nil
	}

	if d.Path == "" {
		return nil, goerr.New("dataset path is required")
	}

	logger.Info("Reading dataset from JSON", "path", d.Path)
	return repository.NewJSONSource(d.Path), nil
}

// DashboardConfig returns the dashboard use case configuration
func (d *Dataset) DashboardConfig() (*usecase.DashboardConfig, error) {
	if d.DefaultWeeks < 1 {
		return nil, goerr.New("default weeks must be positive", goerr.V("weeks", d.DefaultWeeks))
	}

	return usecase.NewDashboardConfig(
		usecase.WithDefaultLocation(types.Location(d.DefaultLocation)),
		usecase.WithDefaultWeeks(d.DefaultWeeks),
	), nil
}

// LogValue returns structured log value
func (d Dataset) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", d.Path),
		slog.String("default_location", d.DefaultLocation),
		slog.Int("default_weeks", d.DefaultWeeks),
	)
}
