package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-zk-drive/internal/client"
	"github.com/MKhiriev/go-zk-drive/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(models.NewBuildInfo(buildVersion, buildDate, buildCommit))
	if err := app.Run(ctx, os.Args[1:]); err != nil {
		stop()
		os.Exit(1)
	}
}
