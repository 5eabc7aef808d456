package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/visastat/pkg/cli/config"
	"github.com/secmon-lab/visastat/pkg/repository"
	"github.com/urfave/cli/v3"
)

func cmdImport() *cli.Command {
	var (
		datasetCfg   config.Dataset
		firestoreCfg config.Firestore
	)

	return &cli.Command{
		Name:  "import",
		Usage: "Copy the JSON dataset into Firestore",
		Flags: joinFlags(datasetCfg.Flags(), firestoreCfg.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if !firestoreCfg.IsConfigured() {
				return goerr.New("firestore project is required, set --firestore-project")
			}

			dataset, err := repository.NewJSONSource(datasetCfg.Path).Load(ctx)
			if err != nil {
				return err
			}

			repo, err := firestoreCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			if err := repo.Put(ctx, dataset); err != nil {
				return err
			}

			logger.Info("Dataset imported",
				slog.String("path", datasetCfg.Path),
				slog.Any("firestore", firestoreCfg),
				slog.Int("locations", len(dataset)),
			)
			return nil
		},
	}
}
