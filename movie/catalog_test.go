package movie_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"moviecatalog/movie"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMovies() []movie.Movie {
	return []movie.Movie{
		{ID: 1, Name: "The Prison Escape", Director: "John Director", Year: 1994, Genre: "Drama", Duration: 142, Rating: 5.0},
		{ID: 2, Name: "The Family Boss", Director: "Michael Filmmaker", Year: 1972, Genre: "Crime/Drama", Duration: 175, Rating: 5.0},
		{ID: 3, Name: "The Masked Hero", Director: "Chris Moviemaker", Year: 2008, Genre: "Action/Crime", Duration: 152, Rating: 5.0},
		{ID: 4, Name: "Urban Stories", Director: "Quent Director", Year: 1994, Genre: "Crime/Drama", Duration: 154, Rating: 4.5},
		{ID: 5, Name: "Life Journey", Director: "Robert Filmmaker", Year: 1994, Genre: "Drama/Romance", Duration: 142, Rating: 4.0},
		{ID: 6, Name: "Dream Heist", Director: "Chris Moviemaker", Year: 2010, Genre: "Action/Sci-Fi", Duration: 148, Rating: 4.5},
		{ID: 7, Name: "The Ring Quest", Director: "Peter Director", Year: 2001, Genre: "Adventure/Fantasy", Duration: 178, Rating: 4.5},
		{ID: 8, Name: "drama club", Director: "Ann Filmmaker", Year: 2015, Genre: "drama", Duration: 95, Rating: 3.5},
	}
}

type stubLoader struct {
	movies []movie.Movie
	err    error
}

func (l stubLoader) LoadMovies(context.Context) ([]movie.Movie, error) {
	return l.movies, l.err
}

func TestNewCatalog(t *testing.T) {
	t.Run("preserves load order", func(t *testing.T) {
		movies := testMovies()

		c := movie.NewCatalog(movies)

		assert.Equal(t, len(movies), c.Len())
		assert.Equal(t, movies, c.ListAll())
	})

	t.Run("skips non-positive and duplicate ids", func(t *testing.T) {
		c := movie.NewCatalog([]movie.Movie{
			{ID: 1, Name: "First", Genre: "Drama"},
			{ID: 0, Name: "Zero", Genre: "Drama"},
			{ID: -3, Name: "Negative", Genre: "Drama"},
			{ID: 1, Name: "Duplicate", Genre: "Comedy"},
			{ID: 2, Name: "Second", Genre: "Comedy"},
		})

		all := c.ListAll()
		require.Len(t, all, 2)
		assert.Equal(t, "First", all[0].Name)
		assert.Equal(t, "Second", all[1].Name)

		m, ok := c.GetByID(1)
		assert.True(t, ok)
		assert.Equal(t, "First", m.Name)
	})

	t.Run("nil input builds an empty catalog", func(t *testing.T) {
		c := movie.NewCatalog(nil)

		assert.Zero(t, c.Len())
		assert.Empty(t, c.ListAll())
		assert.Empty(t, c.Genres())
	})
}

func TestCatalog_ListAll(t *testing.T) {
	c := movie.NewCatalog(testMovies())

	t.Run("callers cannot mutate the catalog", func(t *testing.T) {
		all := c.ListAll()
		all[0].Name = "Changed"

		assert.Equal(t, "The Prison Escape", c.ListAll()[0].Name)
	})
}

func TestCatalog_GetByID(t *testing.T) {
	c := movie.NewCatalog(testMovies())

	t.Run("returns every loaded movie by its id", func(t *testing.T) {
		for _, want := range testMovies() {
			got, ok := c.GetByID(want.ID)
			assert.True(t, ok, "movie %d should be found", want.ID)
			assert.Equal(t, want, got)
		}
	})

	tests := []struct {
		name string
		id   int64
	}{
		{name: "zero id", id: 0},
		{name: "negative id", id: -1},
		{name: "absent id", id: 999},
	}
	for _, tt := range tests {
		t.Run(tt.name+" is not found", func(t *testing.T) {
			got, ok := c.GetByID(tt.id)

			assert.False(t, ok)
			assert.Equal(t, movie.Movie{}, got)
		})
	}
}

func TestCatalog_Genres(t *testing.T) {
	c := movie.NewCatalog(testMovies())

	genres := c.Genres()

	assert.Equal(t, []string{
		"Action/Crime",
		"Action/Sci-Fi",
		"Adventure/Fantasy",
		"Crime/Drama",
		"Drama",
		"Drama/Romance",
		"drama",
	}, genres)
	assert.True(t, sort.StringsAreSorted(genres))

	distinct := map[string]bool{}
	for _, m := range testMovies() {
		distinct[m.Genre] = true
	}
	assert.Len(t, genres, len(distinct))
	for _, g := range genres {
		assert.True(t, distinct[g], "unexpected genre %q", g)
	}
}

func TestCatalog_ConcurrentReads(t *testing.T) {
	c := movie.NewCatalog(testMovies())
	rs := movie.NewResolver(c)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Len(t, c.ListAll(), 8)
			assert.Len(t, c.Genres(), 7)
			_, ok := c.GetByID(3)
			assert.True(t, ok)
			assert.Len(t, rs.Search(movie.Criteria{Name: "the"}), 4)
		}()
	}
	wg.Wait()
}

func TestLoadCatalog(t *testing.T) {
	t.Run("builds the catalog from the loader", func(t *testing.T) {
		c := movie.LoadCatalog(context.Background(), stubLoader{movies: testMovies()}, nil)

		assert.Equal(t, testMovies(), c.ListAll())
	})

	t.Run("falls back to an empty catalog when loading fails", func(t *testing.T) {
		c := movie.LoadCatalog(context.Background(), stubLoader{err: errors.New("malformed data")}, nil)

		require.NotNil(t, c)
		assert.Zero(t, c.Len())
		assert.Empty(t, movie.NewResolver(c).Search(movie.Criteria{}))
	})

	t.Run("falls back to an empty catalog without a loader", func(t *testing.T) {
		c := movie.LoadCatalog(context.Background(), nil, nil)

		require.NotNil(t, c)
		assert.Zero(t, c.Len())
	})
}
