package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Poster is a stored poster image record; the binary itself lives in
// object storage under the poster id.
type Poster struct {
	ID         string
	MovieID    int
	FileName   string
	FileType   string
	FileSize   int64
	CreatedAt  time.Time
	ModifiedAt time.Time
}

type PostersRepository struct {
	db *sql.DB
}

func NewPostersRepository(db *sql.DB) *PostersRepository {
	return &PostersRepository{db: db}
}

func (r *PostersRepository) CreatePoster(movieID int, fileName, fileType string, fileSize int64) (string, error) {
	id := uuid.NewString()
	_, err := r.db.Exec(`
		INSERT INTO poster (id, movie_id, file_name, file_type, file_size, created_at, modified_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())`,
		id, movieID, fileName, fileType, fileSize)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *PostersRepository) GetPosterByID(id string) (*Poster, error) {
	var p Poster
	err := r.db.QueryRow(`
		SELECT id, movie_id, file_name, file_type, file_size, created_at, modified_at
		FROM poster WHERE id = $1`, id).Scan(
		&p.ID, &p.MovieID, &p.FileName, &p.FileType, &p.FileSize, &p.CreatedAt, &p.ModifiedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
