package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/enigmora/lnxdrive-shell/internal/cli"
	"github.com/enigmora/lnxdrive-shell/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd(cli.Options{
		Build: models.NewBuildInfo(buildVersion, buildDate, buildCommit),
	})

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "lnxdrive-shell: %v\n", err)
		stop()
		os.Exit(1)
	}
}
