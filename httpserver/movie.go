package httpserver

import (
	"moviecatalog/errs"
	"moviecatalog/movie"
	"net/http"

	"github.com/labstack/echo/v4"
)

var errMovieServiceMissing = errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")

// SearchResult is the JSON payload of a movie search.
type SearchResult struct {
	Summary      string        `json:"summary"`
	TotalResults int           `json:"totalResults"`
	Movies       []movie.Movie `json:"movies"`
}

func (s *Server) RegisterMovieRoutes(g *echo.Group) {
	g.GET("/movies", s.handleListMovies)
	g.GET("/movies/search", s.handleSearchMovies)
	g.GET("/movies/:id", s.handleGetMovie)
	g.GET("/genres", s.handleListGenres)
}

// handleListMovies godoc
// @Summary List Movies
// @Description Get every movie in catalog order
// @Tags movies
// @Produce json
// @Success 200 {array} movie.Movie
// @Router /api/movies [get]
func (s *Server) handleListMovies(c echo.Context) error {
	if s.MovieService == nil {
		return errMovieServiceMissing
	}

	movies, err := s.MovieService.ListMovies(c.Request().Context())
	if err != nil {
		return err
	}

	return RespondList(c, http.StatusOK, movies)
}

// handleGetMovie godoc
// @Summary Get Movie
// @Description Get a single movie by id
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} movie.Movie
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /api/movies/{id} [get]
func (s *Server) handleGetMovie(c echo.Context) error {
	if s.MovieService == nil {
		return errMovieServiceMissing
	}

	id, err := parseMovieID(c)
	if err != nil {
		return err
	}

	m, err := s.MovieService.GetMovie(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return RespondSuccess(c, http.StatusOK, m)
}

// handleSearchMovies godoc
// @Summary Search Movies
// @Description Search movies by name (partial), id (takes precedence) or genre (exact)
// @Tags movies
// @Produce json
// @Param name query string false "Name fragment, case-insensitive"
// @Param id query int false "Movie ID"
// @Param genre query string false "Genre, case-insensitive exact match"
// @Success 200 {object} SearchResult
// @Failure 400 {object} APIResponse
// @Router /api/movies/search [get]
func (s *Server) handleSearchMovies(c echo.Context) error {
	if s.MovieService == nil {
		return errMovieServiceMissing
	}

	req, err := bindSearchRequest(c)
	if err != nil {
		return err
	}

	criteria := req.ToCriteria()
	if criteria.IsEmpty() {
		return movie.ErrNoCriteria
	}

	movies, err := s.MovieService.SearchMovies(c.Request().Context(), criteria)
	if err != nil {
		return err
	}

	return RespondSuccess(c, http.StatusOK, SearchResult{
		Summary:      movie.Describe(len(movies), criteria),
		TotalResults: len(movies),
		Movies:       movies,
	})
}

// handleListGenres godoc
// @Summary List Genres
// @Description Get the distinct genres, sorted
// @Tags movies
// @Produce json
// @Success 200 {array} string
// @Router /api/genres [get]
func (s *Server) handleListGenres(c echo.Context) error {
	if s.MovieService == nil {
		return errMovieServiceMissing
	}

	genres, err := s.MovieService.ListGenres(c.Request().Context())
	if err != nil {
		return err
	}

	return RespondList(c, http.StatusOK, genres)
}
