package httpserver

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"moviecatalog/errs"
	"moviecatalog/movie"
	"net/http"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	pageMovies  = "movies"
	pageDetails = "movie-details"
	pageError   = "error"
)

// TemplateRenderer renders the HTML pages through echo.Context.Render.
type TemplateRenderer struct {
	templates *template.Template
}

func NewTemplateRenderer() *TemplateRenderer {
	return &TemplateRenderer{
		templates: template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

func (t *TemplateRenderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return t.templates.ExecuteTemplate(w, name, data)
}

type moviesPage struct {
	Movies          []movie.Movie
	Genres          []string
	SearchPerformed bool
	SearchMessage   string
	SearchName      string
	SearchID        int64
	SearchGenre     string
}

type detailsPage struct {
	Movie movie.Movie
	Stars int
}

type errorPage struct {
	Title   string
	Message string
}

func (s *Server) RegisterPageRoutes() {
	s.Router.GET("/movies", s.handleMoviesPage)
	s.Router.GET("/movies/search", s.handleSearchPage)
	s.Router.GET("/movies/:id/details", s.handleDetailsPage)
}

func (s *Server) handleMoviesPage(c echo.Context) error {
	if s.MovieService == nil {
		return errMovieServiceMissing
	}

	ctx := c.Request().Context()
	movies, err := s.MovieService.ListMovies(ctx)
	if err != nil {
		return err
	}
	genres, err := s.MovieService.ListGenres(ctx)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, pageMovies, moviesPage{
		Movies: movies,
		Genres: genres,
	})
}

func (s *Server) handleSearchPage(c echo.Context) error {
	if s.MovieService == nil {
		return errMovieServiceMissing
	}

	req, err := bindSearchRequest(c)
	if err != nil {
		if formatParamIsJSON(c) {
			return err
		}
		return c.Render(http.StatusBadRequest, pageError, errorPage{
			Title:   "Invalid Search",
			Message: errs.ErrorMessage(err),
		})
	}
	if req.WantsJSON() {
		return s.handleSearchMovies(c)
	}

	ctx := c.Request().Context()
	criteria := req.ToCriteria()
	movies, err := s.MovieService.SearchMovies(ctx, criteria)
	if err != nil {
		return err
	}
	genres, err := s.MovieService.ListGenres(ctx)
	if err != nil {
		return err
	}

	message := movie.Describe(len(movies), criteria)
	if criteria.IsEmpty() {
		message = "Please provide at least one search criterion. Showing all movies instead."
	}

	return c.Render(http.StatusOK, pageMovies, moviesPage{
		Movies:          movies,
		Genres:          genres,
		SearchPerformed: true,
		SearchMessage:   message,
		SearchName:      req.Name,
		SearchID:        req.ID,
		SearchGenre:     req.Genre,
	})
}

func (s *Server) handleDetailsPage(c echo.Context) error {
	if s.MovieService == nil {
		return errMovieServiceMissing
	}

	raw := c.Param("id")
	id, err := parseMovieID(c)
	if err != nil {
		return c.Render(http.StatusBadRequest, pageError, errorPage{
			Title:   "Invalid Movie ID",
			Message: fmt.Sprintf("%q is not a valid movie ID.", raw),
		})
	}

	m, err := s.MovieService.GetMovie(c.Request().Context(), id)
	if errs.ErrorCode(err) == errs.ENOTFOUND {
		return c.Render(http.StatusNotFound, pageError, errorPage{
			Title:   "Movie Not Found",
			Message: fmt.Sprintf("Movie with ID %d was not found.", id),
		})
	}
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, pageDetails, detailsPage{
		Movie: m,
		Stars: int(m.Rating + 0.5),
	})
}
