package cli

import (
	"context"
	"io"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/visastat/pkg/cli/config"
	"github.com/secmon-lab/visastat/pkg/domain/interfaces"
	"github.com/secmon-lab/visastat/pkg/domain/model"
	"github.com/secmon-lab/visastat/pkg/domain/types"
	"github.com/secmon-lab/visastat/pkg/service/chart"
	"github.com/secmon-lab/visastat/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdChart() *cli.Command {
	var (
		datasetCfg   config.Dataset
		firestoreCfg config.Firestore
		chartCfg     config.Chart

		location string
		start    string
		end      string
		format   string
		output   string
	)

	flags := joinFlags(
		datasetCfg.Flags(),
		firestoreCfg.Flags(),
		chartCfg.Flags(),
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "location",
				Usage:       "Location to chart (default location when empty)",
				Destination: &location,
			},
			&cli.StringFlag{
				Name:        "start",
				Usage:       "First date (YYYY-MM-DD); the most recent entries when empty",
				Destination: &start,
			},
			&cli.StringFlag{
				Name:        "end",
				Usage:       "Last date (YYYY-MM-DD), requires --start; today when empty",
				Destination: &end,
			},
			&cli.StringFlag{
				Name:        "format",
				Usage:       "Output format (html, png)",
				Value:       "html",
				Destination: &format,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "Output file, - for stdout",
				Value:       "-",
				Destination: &output,
			},
		},
	)

	return &cli.Command{
		Name:  "chart",
		Usage: "Render the stacked bar chart of a location to a file",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			chartConfig, err := chartCfg.Configure()
			if err != nil {
				return err
			}

			var renderer interfaces.ChartRenderer
			switch format {
			case "html":
				renderer = chart.NewECharts(chartConfig)
			case "png":
				renderer = chart.NewPNG(chartConfig)
			default:
				return goerr.New("unsupported chart format", goerr.V("format", format))
			}

			dashboardConfig, err := datasetCfg.DashboardConfig()
			if err != nil {
				return err
			}
			source, err := datasetCfg.Configure(ctx, &firestoreCfg)
			if err != nil {
				return err
			}
			defer source.Close()

			dashboard := usecase.NewDashboard(source, dashboardConfig)
			if err := dashboard.Load(ctx); err != nil {
				return err
			}

			view, err := selectView(ctx, dashboard, types.Location(location), start, end)
			if err != nil {
				return err
			}

			ctxlog.From(ctx).Info("Rendering chart",
				"location", view.Location,
				"start", model.FormatDate(view.Start),
				"end", model.FormatDate(view.End),
				"points", view.Series.Len(),
				"format", format,
			)

			return writeOutput(c.Root().Writer, output, func(w io.Writer) error {
				return renderer.Render(ctx, w, view.Series)
			})
		},
	}
}

func selectView(ctx context.Context, dashboard usecase.DashboardUseCase, location types.Location, start, end string) (*usecase.DashboardView, error) {
	switch {
	case start == "" && end != "":
		return nil, goerr.New("--end requires --start", goerr.V("end", end))
	case start == "":
		return dashboard.DefaultView(ctx, location)
	case end == "":
		return dashboard.Update(ctx, location, start)
	default:
		return dashboard.Range(ctx, location, start, end)
	}
}

// writeOutput writes to stdout for "-" and to a newly created file otherwise
func writeOutput(stdout io.Writer, path string, write func(w io.Writer) error) error {
	if path == "-" || path == "" {
		return write(stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return goerr.Wrap(err, "failed to create output file", goerr.V("path", path))
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return goerr.Wrap(err, "failed to close output file", goerr.V("path", path))
	}
	return nil
}
