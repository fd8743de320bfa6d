package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/arshi-singh/nba-stats-proxy/internal/config"
	"github.com/arshi-singh/nba-stats-proxy/internal/logging"
	"github.com/arshi-singh/nba-stats-proxy/internal/server"
)

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	cfg := config.Load()
	logger := logging.NewLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}
