package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"moviecatalog/httpserver"
	"moviecatalog/jsonfile"
	"moviecatalog/movie"
	"moviecatalog/pkg/config"
	"moviecatalog/pkg/sentry"
	"moviecatalog/postgres"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	sentrygo "github.com/getsentry/sentry-go"
	_ "github.com/lib/pq"
)

const shutdownTimeout = 10 * time.Second

// @title Movie Catalog API
// @version 1.0
// @description Browse and search a read-only movie catalog.
// @BasePath /
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Cannot load config", "error", err)
		os.Exit(1)
	}

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		slog.Error("Cannot init sentry", "error", err)
		os.Exit(1)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loader, err := newLoader(cfg)
	if err != nil {
		slog.Error("Cannot open movie source", "error", err)
		os.Exit(1)
	}
	catalog := movie.LoadCatalog(ctx, loader, logger)
	if catalog.Len() == 0 {
		sentry.WithExtras(map[string]interface{}{
			"source": cfg.Catalog.Source,
			"file":   cfg.Catalog.File,
		}).Warning("movie catalog is empty")
	}

	server := httpserver.Default(cfg)
	server.Logger = logger
	server.MovieService = movie.NewUsecase(catalog, logger)
	server.Addr = fmt.Sprintf(":%d", cfg.Port)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown failed", "error", err)
		}
	}()

	slog.Info("server started!", "addr", server.Addr, "source", cfg.Catalog.Source, "movies", catalog.Len())
	if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server stopped with error", "error", err)
		sentry.Error(err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func newLoader(cfg *config.Config) (movie.Loader, error) {
	if cfg.Catalog.Source != config.SourcePostgres {
		return jsonfile.NewLoader(cfg.Catalog.File), nil
	}

	db, err := postgres.NewConnection(postgres.Options{
		DBName:   cfg.DB.Name,
		DBUser:   cfg.DB.User,
		Password: cfg.DB.Pass,
		Host:     cfg.DB.Host,
		Port:     fmt.Sprintf("%d", cfg.DB.Port),
		SSLMode:  cfg.DB.EnableSSL,
	})
	if err != nil {
		return nil, err
	}
	return postgres.NewMovieRepository(db), nil
}
