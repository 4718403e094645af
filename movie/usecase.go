package movie

import (
	"context"
	"log/slog"
)

type Service interface {
	ListMovies(ctx context.Context) ([]Movie, error)
	GetMovie(ctx context.Context, id int64) (Movie, error)
	SearchMovies(ctx context.Context, c Criteria) ([]Movie, error)
	ListGenres(ctx context.Context) ([]string, error)
}

type Usecase struct {
	catalog  *Catalog
	resolver *Resolver
	logger   *slog.Logger
}

func NewUsecase(c *Catalog, logger *slog.Logger) *Usecase {
	if c == nil {
		c = NewCatalog(nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Usecase{
		catalog:  c,
		resolver: NewResolver(c),
		logger:   logger,
	}
}

func (uc *Usecase) ListMovies(_ context.Context) ([]Movie, error) {
	return uc.catalog.ListAll(), nil
}

func (uc *Usecase) GetMovie(_ context.Context, id int64) (Movie, error) {
	m, ok := uc.catalog.GetByID(id)
	if !ok {
		return Movie{}, ErrMovieNotFound
	}
	return m, nil
}

func (uc *Usecase) SearchMovies(_ context.Context, c Criteria) ([]Movie, error) {
	uc.logger.Info("searching movies", "name", c.Name, "id", c.ID, "genre", c.Genre)

	result := uc.resolver.Search(c)
	if len(result) == 0 {
		uc.logger.Info("no movies matched search criteria")
	} else {
		uc.logger.Info("movies matched search criteria", "count", len(result))
	}
	return result, nil
}

func (uc *Usecase) ListGenres(_ context.Context) ([]string, error) {
	return uc.catalog.Genres(), nil
}
