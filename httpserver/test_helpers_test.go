package httpserver_test

import (
	"context"
	"encoding/json"
	"moviecatalog/httpserver"
	"moviecatalog/movie"
	"moviecatalog/pkg/config"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type apiResponse struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
	Info    string          `json:"info"`
}

type MockMovieService struct {
	mock.Mock
}

func (m *MockMovieService) ListMovies(ctx context.Context) ([]movie.Movie, error) {
	args := m.Called(ctx)
	return args.Get(0).([]movie.Movie), args.Error(1)
}

func (m *MockMovieService) GetMovie(ctx context.Context, id int64) (movie.Movie, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(movie.Movie), args.Error(1)
}

func (m *MockMovieService) SearchMovies(ctx context.Context, c movie.Criteria) ([]movie.Movie, error) {
	args := m.Called(ctx, c)
	return args.Get(0).([]movie.Movie), args.Error(1)
}

func (m *MockMovieService) ListGenres(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func testConfig() *config.Config {
	return &config.Config{}
}

func testMovies() []movie.Movie {
	return []movie.Movie{
		{ID: 1, Name: "The Prison Escape", Director: "John Director", Year: 1994, Genre: "Drama", Description: "Two imprisoned men bond.", Duration: 142, Rating: 5.0},
		{ID: 2, Name: "The Masked Hero", Director: "Chris Moviemaker", Year: 2008, Genre: "Action/Crime", Description: "A masked hero fights injustice.", Duration: 152, Rating: 4.5},
		{ID: 3, Name: "The Family Boss", Director: "Michael Filmmaker", Year: 1972, Genre: "Crime/Drama", Description: "A crime dynasty changes hands.", Duration: 175, Rating: 5.0},
	}
}

// newCatalogServer wires a real catalog behind the server.
func newCatalogServer(movies []movie.Movie) *httpserver.Server {
	server := httpserver.Default(testConfig())
	server.MovieService = movie.NewUsecase(movie.NewCatalog(movies), nil)
	return server
}

func decodeAPIResponse(t *testing.T, rec *httptest.ResponseRecorder) apiResponse {
	t.Helper()
	var resp apiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "Failed to decode response: %s", rec.Body.String())
	return resp
}

func decodeAPIResult(t *testing.T, raw json.RawMessage, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(raw, v), "Failed to decode result")
}
