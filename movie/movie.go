package movie

import (
	"strings"

	"moviecatalog/errs"
)

var (
	ErrMovieNotFound = errs.Errorf(errs.ENOTFOUND, "movie not found")
	ErrInvalidID     = errs.Errorf(errs.EINVALID, "invalid movie id")
	ErrNoCriteria    = errs.Errorf(errs.EINVALID, "at least one search criterion is required")
)

// Movie is a single catalog record. Values are never mutated after the
// catalog is built.
type Movie struct {
	ID          int64   `json:"id" validate:"gt=0"`
	Name        string  `json:"movieName" validate:"required"`
	Director    string  `json:"director"`
	Year        int     `json:"year"`
	Genre       string  `json:"genre" validate:"required"`
	Description string  `json:"description"`
	Duration    int     `json:"duration"`
	Rating      float64 `json:"imdbRating"`
}

// Criteria holds the optional search axes. Zero values mean "not supplied":
// a blank Name or Genre and a non-positive ID are ignored.
type Criteria struct {
	Name  string
	ID    int64
	Genre string
}

func (c Criteria) name() string  { return strings.TrimSpace(c.Name) }
func (c Criteria) genre() string { return strings.TrimSpace(c.Genre) }

// HasID reports whether the criteria carry a usable identifier.
func (c Criteria) HasID() bool {
	return c.ID > 0
}

// IsEmpty reports whether no usable criterion was supplied.
func (c Criteria) IsEmpty() bool {
	return !c.HasID() && c.name() == "" && c.genre() == ""
}
