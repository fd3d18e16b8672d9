package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/tessella/sqldiag/pkg/cmd"
)

// NB: Set by GoReleaser during a build.
var version string

func main() {
	if err := cmd.New(version).Run(context.Background(), os.Args); err != nil {
		slog.Error("sqldiag failed", "error", err)
		os.Exit(1)
	}
}
