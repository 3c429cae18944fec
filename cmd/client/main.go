package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/gymfeed/internal/client/cli"
	"github.com/dmitrijs2005/gymfeed/internal/client/config"
	"github.com/dmitrijs2005/gymfeed/internal/flagx"
	"github.com/dmitrijs2005/gymfeed/internal/logging"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, logging.ParseLevel(cfg.LogLevel))

	initialPath := "/"
	if args := flagx.Positional(os.Args[1:], config.FlagsWithValue); len(args) > 0 {
		initialPath = args[0]
	}

	app, err := cli.NewApp(ctx, cfg, logger, initialPath)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx, initialPath)

}
