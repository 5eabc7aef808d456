package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/visastat/pkg/cli/config"
	"github.com/secmon-lab/visastat/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdStatus() *cli.Command {
	var statusCfg config.Status

	return &cli.Command{
		Name:      "status",
		Usage:     "Check the status of one visa application",
		ArgsUsage: "<application-id>",
		Flags:     statusCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			client, err := statusCfg.Configure()
			if err != nil {
				return err
			}
			if client == nil {
				return goerr.New("status endpoint is required, set --status-endpoint")
			}

			result, err := usecase.NewStatusLookup(client).Check(ctx, c.Args().First())
			view := usecase.PresentStatus(result, err)
			if _, werr := fmt.Fprintln(c.Root().Writer, view.Message); werr != nil {
				return goerr.Wrap(werr, "failed to write status")
			}
			return err
		},
	}
}
