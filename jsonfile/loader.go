// Package jsonfile loads the movie catalog from a JSON array on disk.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"moviecatalog/movie"

	"github.com/go-playground/validator/v10"
)

const DefaultPath = "data/movies.json"

// Loader implements movie.Loader for a movies.json file.
type Loader struct {
	Path     string
	validate *validator.Validate
}

func NewLoader(path string) *Loader {
	if path == "" {
		path = DefaultPath
	}
	return &Loader{
		Path:     path,
		validate: validator.New(),
	}
}

// LoadMovies decodes every record in file order. The whole load fails on the
// first malformed or invalid record.
func (l *Loader) LoadMovies(ctx context.Context) ([]movie.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, fmt.Errorf("read movies file: %w", err)
	}

	var movies []movie.Movie
	if err := json.Unmarshal(raw, &movies); err != nil {
		return nil, fmt.Errorf("decode movies file %s: %w", l.Path, err)
	}

	v := l.validate
	if v == nil {
		v = validator.New()
	}
	for i, m := range movies {
		if err := v.Struct(m); err != nil {
			return nil, fmt.Errorf("invalid movie at index %d: %w", i, err)
		}
	}
	return movies, nil
}
