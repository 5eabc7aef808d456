package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/secmon-lab/visastat/pkg/cli"
)

func main() {
	if err := cli.Run(context.Background(), os.Args); err != nil {
		slog.Default().Error("visastat failed", "error", err)
		os.Exit(1)
	}
}
