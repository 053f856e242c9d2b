package repository

import (
	"database/sql"
	"fmt"

	"github.com/knixan/b-movies/models"
	"github.com/knixan/b-movies/types"
)

type MoviesRepository struct {
	db *sql.DB
}

func NewMoviesRepository(db *sql.DB) *MoviesRepository {
	return &MoviesRepository{db: db}
}

// MovieSortMap is the public sort whitelist for the catalog listing.
// Only these keys ever reach an ORDER BY clause.
func MovieSortMap() types.SortMap {
	return types.SortMap{
		Fields: map[string]string{
			"title":   "title",
			"price":   "price_cents",
			"year":    "release_year",
			"runtime": "runtime_minutes",
			"created": "created_at",
		},
		DefaultKey: "title",
	}
}

// orderClause renders the ORDER BY for a canonical descriptor. The sort
// field comes from the whitelist, never from raw input, so interpolating it
// here is safe. A secondary id sort keeps pages stable across requests.
func orderClause(d types.QueryDescriptor) string {
	dir := "ASC"
	if d.SortDirection == types.SortDesc {
		dir = "DESC"
	}
	return fmt.Sprintf("ORDER BY m.%s %s, m.id %s", d.SortField, dir, dir)
}

// ListMovies executes a canonical listing query: case-insensitive substring
// match on the title, membership match on genre (at least one associated
// genre equals the filter), whitelisted sort, and the descriptor's
// offset/limit window. Returns the page of movies and the total count
// before windowing.
func (r *MoviesRepository) ListMovies(d types.QueryDescriptor) ([]*models.Movie, int, error) {
	where := `
		WHERE m.is_deleted = FALSE
		  AND ($1 = '' OR m.title ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR EXISTS (
			SELECT 1 FROM movie_to_genre mg
			JOIN genre g ON g.id = mg.genre_id
			WHERE mg.movie_id = m.id AND g.name = $2))`

	query := `
		SELECT m.id, m.title, m.description, m.price_cents, m.release_year,
		       m.runtime_minutes, m.poster_id, m.created_at, m.modified_at
		FROM movie m` + where + `
		` + orderClause(d) + `
		LIMIT $3 OFFSET $4`

	rows, err := r.db.Query(query, d.SearchText, d.GenreFilter, d.Limit(), d.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var movies []*models.Movie
	for rows.Next() {
		var m models.Movie
		var posterID sql.NullString
		if err := rows.Scan(&m.ID, &m.Title, &m.Description, &m.PriceCents,
			&m.ReleaseYear, &m.RuntimeMinutes, &posterID, &m.CreatedAt, &m.ModifiedAt); err != nil {
			return nil, 0, err
		}
		if posterID.Valid {
			m.PosterID = &posterID.String
		}
		movies = append(movies, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for _, m := range movies {
		genres, err := r.movieGenres(m.ID)
		if err != nil {
			return nil, 0, err
		}
		m.Genres = genres
	}

	var total int
	err = r.db.QueryRow(`SELECT COUNT(*) FROM movie m`+where, d.SearchText, d.GenreFilter).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	return movies, total, nil
}

func (r *MoviesRepository) movieGenres(movieID int) ([]string, error) {
	rows, err := r.db.Query(`
		SELECT g.name FROM genre g
		JOIN movie_to_genre mg ON g.id = mg.genre_id
		WHERE mg.movie_id = $1
		ORDER BY g.name`, movieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var genres []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		genres = append(genres, name)
	}
	return genres, rows.Err()
}

func (r *MoviesRepository) GetMovieByID(id int) (*models.Movie, error) {
	var m models.Movie
	var posterID sql.NullString
	err := r.db.QueryRow(`
		SELECT id, title, description, price_cents, release_year,
		       runtime_minutes, poster_id, created_at, modified_at, is_deleted
		FROM movie WHERE id = $1`, id).Scan(
		&m.ID, &m.Title, &m.Description, &m.PriceCents, &m.ReleaseYear,
		&m.RuntimeMinutes, &posterID, &m.CreatedAt, &m.ModifiedAt, &m.IsDeleted)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if posterID.Valid {
		m.PosterID = &posterID.String
	}

	genres, err := r.movieGenres(m.ID)
	if err != nil {
		return nil, err
	}
	m.Genres = genres

	rows, err := r.db.Query(`
		SELECT c.movie_id, c.person_id, p.name, c.role, c.character_name
		FROM credit c
		JOIN person p ON p.id = c.person_id
		WHERE c.movie_id = $1 AND p.is_deleted = FALSE
		ORDER BY c.role, p.name`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var cr models.Credit
		var character sql.NullString
		if err := rows.Scan(&cr.MovieID, &cr.PersonID, &cr.PersonName, &cr.Role, &character); err != nil {
			return nil, err
		}
		if character.Valid {
			cr.CharacterName = &character.String
		}
		m.Credits = append(m.Credits, cr)
	}
	return &m, rows.Err()
}

// CreateMovie inserts a movie and its genre links in one transaction.
// Unknown genre names are created on the fly.
func (r *MoviesRepository) CreateMovie(title, description string, priceCents, releaseYear, runtimeMinutes int, genres []string) (*models.Movie, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var movieID int
	err = tx.QueryRow(`
		INSERT INTO movie (title, description, price_cents, release_year, runtime_minutes, created_at, modified_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id`,
		title, description, priceCents, releaseYear, runtimeMinutes).Scan(&movieID)
	if err != nil {
		return nil, err
	}

	if err := linkGenres(tx, movieID, genres); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return r.GetMovieByID(movieID)
}

// UpdateMovie updates provided fields only, coalescing to current values.
// When genres is non-nil the genre set is replaced wholesale.
func (r *MoviesRepository) UpdateMovie(id int, title, description *string, priceCents, releaseYear, runtimeMinutes *int, genres []string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		UPDATE movie SET
			title = COALESCE($2, title),
			description = COALESCE($3, description),
			price_cents = COALESCE($4, price_cents),
			release_year = COALESCE($5, release_year),
			runtime_minutes = COALESCE($6, runtime_minutes),
			modified_at = NOW()
		WHERE id = $1 AND is_deleted = FALSE`,
		id, title, description, priceCents, releaseYear, runtimeMinutes)
	if err != nil {
		return err
	}

	if genres != nil {
		if _, err := tx.Exec(`DELETE FROM movie_to_genre WHERE movie_id = $1`, id); err != nil {
			return err
		}
		if err := linkGenres(tx, id, genres); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func linkGenres(tx *sql.Tx, movieID int, genres []string) error {
	for _, name := range genres {
		var genreID int
		err := tx.QueryRow(`
			INSERT INTO genre (name) VALUES ($1)
			ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
			RETURNING id`, name).Scan(&genreID)
		if err != nil {
			return err
		}
		_, err = tx.Exec(`
			INSERT INTO movie_to_genre (movie_id, genre_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING`, movieID, genreID)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *MoviesRepository) UpdateMovieDeleted(id int, isDeleted bool) error {
	_, err := r.db.Exec(`
		UPDATE movie SET is_deleted = $1, modified_at = NOW()
		WHERE id = $2`, isDeleted, id)
	return err
}

func (r *MoviesRepository) SetPoster(movieID int, posterID *string) error {
	_, err := r.db.Exec(`
		UPDATE movie SET poster_id = $1, modified_at = NOW()
		WHERE id = $2`, posterID, movieID)
	return err
}

// SetCredit upserts a (movie, person, role) link.
func (r *MoviesRepository) SetCredit(movieID, personID int, role string, characterName *string) error {
	_, err := r.db.Exec(`
		INSERT INTO credit (movie_id, person_id, role, character_name)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (movie_id, person_id, role)
		DO UPDATE SET character_name = EXCLUDED.character_name`,
		movieID, personID, role, characterName)
	return err
}

func (r *MoviesRepository) RemoveCredit(movieID, personID int, role string) error {
	_, err := r.db.Exec(`
		DELETE FROM credit
		WHERE movie_id = $1 AND person_id = $2 AND role = $3`,
		movieID, personID, role)
	return err
}
