package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/visastat/pkg/domain/interfaces"
	"github.com/secmon-lab/visastat/pkg/service/status"
	"github.com/urfave/cli/v3"
)

// Status holds status lookup endpoint configuration
type Status struct {
	Endpoint string
}

// Flags returns CLI flags for Status configuration
func (s *Status) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "status-endpoint",
			Usage:       "Base URL of the application status endpoint",
			Category:    "Status",
			Sources:     cli.EnvVars("VISASTAT_STATUS_ENDPOINT"),
			Destination: &s.Endpoint,
		},
	}
}

// Configure creates the status client. It returns nil when no endpoint is set.
func (s *Status) Configure() (interfaces.StatusClient, error) {
	if !s.IsConfigured() {
		return nil, nil
	}

	client, err := status.New(s.Endpoint)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create status client",
			goerr.V("endpoint", s.Endpoint))
	}
	return client, nil
}

// IsConfigured checks if a status endpoint is set
func (s *Status) IsConfigured() bool {
	return s.Endpoint != ""
}

// LogValue returns structured log value
func (s Status) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("endpoint", s.Endpoint),
	)
}
