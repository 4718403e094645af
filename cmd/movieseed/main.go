package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"moviecatalog/jsonfile"
	"moviecatalog/pkg/config"
	"moviecatalog/postgres"
	"os"

	_ "github.com/lib/pq"
)

// movieseed copies a movies.json file into the movies table so the server
// can run with CATALOG_SOURCE=postgres.
func main() {
	var file string
	flag.StringVar(&file, "file", jsonfile.DefaultPath, "Path to the movies.json file to import")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("load config failed", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	movies, err := jsonfile.NewLoader(file).LoadMovies(ctx)
	if err != nil {
		slog.Error("cannot read movies file", "file", file, "error", err)
		os.Exit(1)
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
		slog.Error("cannot open postgres connection", "error", err)
		os.Exit(1)
	}

	count, err := postgres.NewMovieRepository(db).SaveMovies(ctx, movies)
	if err != nil {
		slog.Error("import failed", "error", err)
		os.Exit(1)
	}

	slog.Info("import completed", "rows", count, "skipped", len(movies)-count)
}
