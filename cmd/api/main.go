// Command api is the composition root of the employee service.
//
// It constructs the object graph once, in dependency order (config,
// loggers, server container, repositories, services, handlers,
// middlewares, router), wires it for the lifetime of the process, and
// handles graceful shutdown. No component looks up its own dependencies.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/employee-api/internal/config"
	"github.com/deppfellow/employee-api/internal/database"
	"github.com/deppfellow/employee-api/internal/handler"
	"github.com/deppfellow/employee-api/internal/logger"
	"github.com/deppfellow/employee-api/internal/middleware"
	"github.com/deppfellow/employee-api/internal/repository"
	"github.com/deppfellow/employee-api/internal/router"
	"github.com/deppfellow/employee-api/internal/server"
	"github.com/deppfellow/employee-api/internal/service"
	"github.com/pkg/errors"
)

// shutdownTimeout bounds how long in-flight requests may finish during
// graceful shutdown.
const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Load fails fast internally; this is belt and braces.
		os.Exit(1)
	}

	loggerService, err := logger.NewLoggerService(cfg)
	if err != nil {
		os.Exit(1)
	}

	log := logger.New(cfg, loggerService)

	s, err := server.New(cfg, &log, loggerService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	// Schema migrations run before any repository touches the pool.
	if cfg.Storage.Backend == config.StorageBackendPostgres {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		if err := database.Migrate(ctx, &log, cfg); err != nil {
			cancel()
			log.Fatal().Err(err).Msg("failed to migrate database schema")
		}
		cancel()
	}

	repos := repository.NewRepositories(s)

	services, err := service.NewServices(s, repos)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize services")
	}

	handlers := handler.NewHandlers(s, services)
	middlewares := middleware.NewMiddlewares(s)

	e := router.New(s, handlers, middlewares)
	s.SetupHTTPServer(e)

	// Run the server in the background so the main goroutine can wait
	// for termination signals.
	errCh := make(chan error, 1)
	go func() {
		if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Fatal().Err(err).Msg("server failed")
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}

	loggerService.Shutdown(5 * time.Second)

	log.Info().Msg("server stopped")
}
