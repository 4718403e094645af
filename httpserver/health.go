package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterHealthRoutes() {
	s.Router.GET("/healthcheck", s.healthCheck)
}

// healthCheck godoc
// @Summary Health Check
// @Description Check if server is alive and report the catalog size
// @Tags health
// @Success 200 {object} map[string]interface{}
// @Router /healthcheck [get]
func (s *Server) healthCheck(c echo.Context) error {
	body := map[string]interface{}{
		"status": "OK",
	}
	if s.MovieService != nil {
		movies, err := s.MovieService.ListMovies(c.Request().Context())
		if err != nil {
			return err
		}
		body["movies"] = len(movies)
	}
	return RespondSuccess(c, http.StatusOK, body)
}
