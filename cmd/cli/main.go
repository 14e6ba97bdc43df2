package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/IrtizaAhmed131198/dating-app/internal/client/cli"
	"github.com/IrtizaAhmed131198/dating-app/internal/client/config"
	"github.com/IrtizaAhmed131198/dating-app/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	logger := logging.NewDefault(cfg.LogLevel)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app.Run(ctx)
}
