package movie

import (
	"context"
	"log/slog"
	"sort"
)

// Reader is the read-only view of a catalog the resolver searches.
type Reader interface {
	ListAll() []Movie
	GetByID(id int64) (Movie, bool)
}

// Loader supplies the records a catalog is built from.
type Loader interface {
	LoadMovies(ctx context.Context) ([]Movie, error)
}

// Catalog is the immutable, in-memory movie collection plus its identifier
// index. It is safe for concurrent use once constructed.
type Catalog struct {
	movies []Movie
	byID   map[int64]Movie
}

// NewCatalog builds a catalog preserving the order of movies. Records with a
// non-positive or already seen id are skipped so that the sequence and the
// index always hold exactly the same records.
func NewCatalog(movies []Movie) *Catalog {
	c := &Catalog{
		movies: make([]Movie, 0, len(movies)),
		byID:   make(map[int64]Movie, len(movies)),
	}
	for _, m := range movies {
		if m.ID <= 0 {
			continue
		}
		if _, ok := c.byID[m.ID]; ok {
			continue
		}
		c.movies = append(c.movies, m)
		c.byID[m.ID] = m
	}
	return c
}

// LoadCatalog builds a catalog from the loader. A failing loader never aborts
// startup: the error is logged and an empty catalog is returned.
func LoadCatalog(ctx context.Context, l Loader, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}
	if l == nil {
		logger.Warn("no movie loader configured, starting with an empty catalog")
		return NewCatalog(nil)
	}

	movies, err := l.LoadMovies(ctx)
	if err != nil {
		logger.Error("failed to load movies, starting with an empty catalog", "error", err)
		return NewCatalog(nil)
	}

	c := NewCatalog(movies)
	if skipped := len(movies) - c.Len(); skipped > 0 {
		logger.Warn("skipped movies with invalid or duplicate id", "skipped", skipped)
	}
	logger.Info("movie catalog loaded", "movies", c.Len())
	return c
}

// ListAll returns every movie in load order.
func (c *Catalog) ListAll() []Movie {
	out := make([]Movie, len(c.movies))
	copy(out, c.movies)
	return out
}

// GetByID looks up a movie by id. Non-positive ids are rejected before the
// index is consulted.
func (c *Catalog) GetByID(id int64) (Movie, bool) {
	if id <= 0 {
		return Movie{}, false
	}
	m, ok := c.byID[id]
	return m, ok
}

// Genres returns the distinct genres in ascending byte order. The ordering is
// case-sensitive even though genre matching is not.
func (c *Catalog) Genres() []string {
	seen := make(map[string]struct{}, len(c.movies))
	genres := make([]string, 0, len(c.movies))
	for _, m := range c.movies {
		if _, ok := seen[m.Genre]; ok {
			continue
		}
		seen[m.Genre] = struct{}{}
		genres = append(genres, m.Genre)
	}
	sort.Strings(genres)
	return genres
}

func (c *Catalog) Len() int {
	return len(c.movies)
}
