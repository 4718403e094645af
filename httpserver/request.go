package httpserver

import (
	"strconv"
	"strings"

	"moviecatalog/movie"

	"github.com/labstack/echo/v4"
)

const (
	formatHTML = "html"
	formatJSON = "json"
)

// SearchRequest carries the raw search query parameters. A non-positive id
// is accepted and treated as "no id" by the catalog.
type SearchRequest struct {
	Name   string `query:"name" validate:"max=200"`
	ID     int64  `query:"id"`
	Genre  string `query:"genre" validate:"max=100"`
	Format string `query:"format" validate:"omitempty,oneof=html json"`
}

func (r SearchRequest) ToCriteria() movie.Criteria {
	return movie.Criteria{
		Name:  r.Name,
		ID:    r.ID,
		Genre: r.Genre,
	}
}

func (r SearchRequest) WantsJSON() bool {
	return r.Format == formatJSON
}

func bindSearchRequest(c echo.Context) (SearchRequest, error) {
	var req SearchRequest
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &req); err != nil {
		return req, movie.ErrInvalidID
	}
	req.Format = strings.ToLower(strings.TrimSpace(req.Format))
	if err := c.Validate(&req); err != nil {
		return req, err
	}
	return req, nil
}

func parseMovieID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil {
		return 0, movie.ErrInvalidID
	}
	return id, nil
}

// formatParamIsJSON reads the raw format parameter, for requests that failed
// to bind.
func formatParamIsJSON(c echo.Context) bool {
	return strings.EqualFold(strings.TrimSpace(c.QueryParam("format")), formatJSON)
}
