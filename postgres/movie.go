package postgres

import (
	"context"
	"moviecatalog/movie"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MovieModel represents the database model for movies.
// Position keeps the catalog load order stable across reloads.
type MovieModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement:false"`
	Position    int     `gorm:"not null;default:0"`
	Name        string  `gorm:"not null"`
	Director    string  `gorm:"not null;default:''"`
	Year        int     `gorm:"not null;default:0"`
	Genre       string  `gorm:"not null"`
	Description string  `gorm:"not null;default:''"`
	Duration    int     `gorm:"not null;default:0"`
	Rating      float64 `gorm:"not null;default:0"`
}

// TableName specifies the table name for GORM
func (MovieModel) TableName() string {
	return "movies"
}

func (m MovieModel) toMovie() movie.Movie {
	return movie.Movie{
		ID:          m.ID,
		Name:        m.Name,
		Director:    m.Director,
		Year:        m.Year,
		Genre:       m.Genre,
		Description: m.Description,
		Duration:    m.Duration,
		Rating:      m.Rating,
	}
}

// MovieRepository implements movie.Loader on top of the movies table.
type MovieRepository struct {
	db *gorm.DB
}

// NewMovieRepository creates a new movie repository
func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

// LoadMovies returns every stored movie in load order.
func (r *MovieRepository) LoadMovies(ctx context.Context) ([]movie.Movie, error) {
	var models []MovieModel
	if err := r.db.WithContext(ctx).Order("position, id").Find(&models).Error; err != nil {
		return nil, err
	}

	movies := make([]movie.Movie, len(models))
	for i, model := range models {
		movies[i] = model.toMovie()
	}
	return movies, nil
}

// SaveMovies upserts movies by id, recording their order in position.
// Invalid and repeated ids are dropped the same way the catalog drops them.
func (r *MovieRepository) SaveMovies(ctx context.Context, movies []movie.Movie) (int, error) {
	movies = movie.NewCatalog(movies).ListAll()
	if len(movies) == 0 {
		return 0, nil
	}

	models := make([]MovieModel, len(movies))
	for i, m := range movies {
		models[i] = MovieModel{
			ID:          m.ID,
			Position:    i,
			Name:        m.Name,
			Director:    m.Director,
			Year:        m.Year,
			Genre:       m.Genre,
			Description: m.Description,
			Duration:    m.Duration,
			Rating:      m.Rating,
		}
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).CreateInBatches(models, 100).Error
	})
	if err != nil {
		return 0, err
	}
	return len(models), nil
}
