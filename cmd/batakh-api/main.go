package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"batakh/internal/core/langpack"
	"batakh/internal/core/temporal"
	"batakh/internal/platform/config"
	"batakh/internal/platform/logger"
	phttp "batakh/internal/platform/net/http"

	"batakh/internal/services/api"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	root := config.New()
	apiCfg := root.Prefix("BATAKH_API_")

	// bring up logging early
	l := logger.Get()

	pack, err := langpack.Load()
	if err != nil {
		l.Panic().Err(err).Msg("langpack.Load failed")
	}
	parser := temporal.New(pack)

	// http server (reads BATAKH_API_PORT, defaults to the protocol's :8000)
	srv := phttp.NewServer(apiCfg)

	api.Mount(srv.Router(), api.Options{
		Config: apiCfg,
		Logger: l,
		Pack:   pack,
		Parser: parser,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
