package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/visastat/pkg/cli/config"
	controller "github.com/secmon-lab/visastat/pkg/controller/http"
	"github.com/secmon-lab/visastat/pkg/usecase"
	"github.com/secmon-lab/visastat/pkg/utils/async"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg    config.Server
		datasetCfg   config.Dataset
		firestoreCfg config.Firestore
		statusCfg    config.Status
		chartCfg     config.Chart
	)

	flags := joinFlags(
		serverCfg.Flags(),
		datasetCfg.Flags(),
		firestoreCfg.Flags(),
		statusCfg.Flags(),
		chartCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting visastat server",
				slog.Any("server", serverCfg),
				slog.Any("dataset", datasetCfg),
				slog.Any("firestore", firestoreCfg),
				slog.Any("status", statusCfg),
				slog.Any("chart", chartCfg),
			)

			chartConfig, err := chartCfg.Configure()
			if err != nil {
				return err
			}

			dashboardConfig, err := datasetCfg.DashboardConfig()
			if err != nil {
				return err
			}

			source, err := datasetCfg.Configure(ctx, &firestoreCfg)
			if err != nil {
				return err
			}
			defer func() {
				if err := source.Close(); err != nil {
					logger.Warn("Failed to close dataset source", "error", err)
				}
			}()

			statusClient, err := statusCfg.Configure()
			if err != nil {
				return err
			}
			if statusClient == nil {
				logger.Warn("Status endpoint is not configured, status lookup is disabled")
			}

			dashboard := usecase.NewDashboard(source, dashboardConfig)
			statusUC := usecase.NewStatusLookup(statusClient)

			server, err := controller.NewServer(
				ctx,
				controller.NewConfig(serverCfg.Addr, serverCfg.CORSOrigins, chartConfig),
				controller.NewUseCases(dashboard, statusUC),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			// The page answers with a loading notice until the dataset is ready
			loaded := async.Dispatch(ctx, dashboard.Load)

			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

		wait:
			for {
				select {
				case err := <-loaded:
					if err != nil {
						logger.Error("Dataset is unavailable, serving load failure notice")
					}
					loaded = nil
				case <-ctx.Done():
					logger.Info("Context cancelled, shutting down...")
					break wait
				case sig := <-sigChan:
					logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
					break wait
				}
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
