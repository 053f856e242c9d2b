package repository

import (
	"database/sql"

	"github.com/knixan/b-movies/models"
)

type GenresRepository struct {
	db *sql.DB
}

func NewGenresRepository(db *sql.DB) *GenresRepository {
	return &GenresRepository{db: db}
}

// ListGenres returns all genres ordered by name, for filter dropdowns.
func (r *GenresRepository) ListGenres() ([]models.Genre, error) {
	rows, err := r.db.Query(`SELECT id, name FROM genre ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var genres []models.Genre
	for rows.Next() {
		var g models.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		genres = append(genres, g)
	}
	return genres, rows.Err()
}

func (r *GenresRepository) GetGenreByName(name string) (*models.Genre, error) {
	var g models.Genre
	err := r.db.QueryRow(`SELECT id, name FROM genre WHERE name = $1`, name).Scan(&g.ID, &g.Name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GenresRepository) CreateGenre(name string) (*models.Genre, error) {
	var g models.Genre
	err := r.db.QueryRow(`
		INSERT INTO genre (name) VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name`, name).Scan(&g.ID, &g.Name)
	if err != nil {
		return nil, err
	}
	return &g, nil
}
