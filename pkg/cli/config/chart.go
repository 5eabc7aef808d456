package config

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/visastat/pkg/domain/model"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Chart holds chart appearance configuration
type Chart struct {
	ConfigPath string
}

// Flags returns CLI flags for Chart configuration
func (c *Chart) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "chart-config",
			Usage:       "Path to chart appearance YAML (title, series labels, colors, size)",
			Category:    "Chart",
			Sources:     cli.EnvVars("VISASTAT_CHART_CONFIG"),
			Destination: &c.ConfigPath,
		},
	}
}

// Configure returns the chart configuration, the defaults when no file is given
func (c *Chart) Configure() (*model.ChartConfig, error) {
	if c.ConfigPath == "" {
		return model.DefaultChartConfig(), nil
	}
	return LoadChartConfigFromFile(c.ConfigPath)
}

// LogValue returns structured log value
func (c Chart) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("config_path", c.ConfigPath),
	)
}

// LoadChartConfigFromFile loads chart appearance from YAML file.
// Fields left out keep their default values.
func LoadChartConfigFromFile(path string) (*model.ChartConfig, error) {
	if path == "" {
		return nil, goerr.New("configuration file path is required")
	}

	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "configuration file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read configuration file",
			goerr.V("path", path))
	}

	// Parse YAML
	var config model.ChartConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, goerr.Wrap(err, "failed to parse YAML configuration",
			goerr.V("path", path))
	}

	merged := config.WithDefaults()
	if err := merged.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid configuration",
			goerr.V("path", path))
	}

	return merged, nil
}
