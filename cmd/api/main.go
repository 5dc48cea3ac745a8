package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/storemate/backend/internal/config"
	"github.com/storemate/backend/internal/handler"
	"github.com/storemate/backend/internal/logger"
	"github.com/storemate/backend/internal/middleware"
	"github.com/storemate/backend/internal/repository"
	"github.com/storemate/backend/internal/router"
	"github.com/storemate/backend/internal/server"
	"github.com/storemate/backend/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}

	log := logger.New(cfg)

	srv, err := server.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos := repository.NewRepositories(srv)
	services := service.NewServices(srv, repos)
	handlers := handler.NewHandlers(srv, services)
	middlewares := middleware.NewMiddlewares(srv)

	e := router.New(srv, handlers, middlewares)
	srv.SetupHTTPServer(e)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Error().Err(err).Msg("server stopped")
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
