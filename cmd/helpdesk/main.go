package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/helpdesk/internal/buildinfo"
	"github.com/dmitrijs2005/helpdesk/internal/cli"
	"github.com/dmitrijs2005/helpdesk/internal/config"
	"github.com/dmitrijs2005/helpdesk/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.Load()
	logger := logging.NewTextLogger(os.Stderr, cfg.LogLevel)
	app, err := cli.NewApp(cfg, logger)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
