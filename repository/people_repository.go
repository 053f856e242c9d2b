package repository

import (
	"database/sql"

	"github.com/knixan/b-movies/models"
	"github.com/knixan/b-movies/types"
)

type PeopleRepository struct {
	db *sql.DB
}

func NewPeopleRepository(db *sql.DB) *PeopleRepository {
	return &PeopleRepository{db: db}
}

// PersonSortMap is the sort whitelist for the people listing.
func PersonSortMap() types.SortMap {
	return types.SortMap{
		Fields: map[string]string{
			"name":    "name",
			"created": "created_at",
		},
		DefaultKey: "name",
	}
}

// ListPeople runs a canonical listing query against the person table.
// The genre filter restricts to people credited on at least one movie in
// the named genre.
func (r *PeopleRepository) ListPeople(d types.QueryDescriptor) ([]*models.Person, int, error) {
	where := `
		WHERE p.is_deleted = FALSE
		  AND ($1 = '' OR p.name ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR EXISTS (
			SELECT 1 FROM credit c
			JOIN movie_to_genre mg ON mg.movie_id = c.movie_id
			JOIN genre g ON g.id = mg.genre_id
			WHERE c.person_id = p.id AND g.name = $2))`

	dir := "ASC"
	if d.SortDirection == types.SortDesc {
		dir = "DESC"
	}
	query := `
		SELECT p.id, p.name, p.created_at, p.modified_at
		FROM person p` + where + `
		ORDER BY p.` + d.SortField + ` ` + dir + `, p.id ` + dir + `
		LIMIT $3 OFFSET $4`

	rows, err := r.db.Query(query, d.SearchText, d.GenreFilter, d.Limit(), d.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var people []*models.Person
	for rows.Next() {
		var p models.Person
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt, &p.ModifiedAt); err != nil {
			return nil, 0, err
		}
		people = append(people, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	err = r.db.QueryRow(`SELECT COUNT(*) FROM person p`+where, d.SearchText, d.GenreFilter).Scan(&total)
	if err != nil {
		return nil, 0, err
	}
	return people, total, nil
}

// GetPersonByID returns a person with their filmography.
func (r *PeopleRepository) GetPersonByID(id int) (*models.Person, error) {
	var p models.Person
	err := r.db.QueryRow(`
		SELECT id, name, created_at, modified_at, is_deleted
		FROM person WHERE id = $1`, id).Scan(
		&p.ID, &p.Name, &p.CreatedAt, &p.ModifiedAt, &p.IsDeleted)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(`
		SELECT c.movie_id, m.title, c.person_id, c.role, c.character_name
		FROM credit c
		JOIN movie m ON m.id = c.movie_id
		WHERE c.person_id = $1 AND m.is_deleted = FALSE
		ORDER BY m.release_year DESC, m.title`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var cr models.Credit
		var character sql.NullString
		if err := rows.Scan(&cr.MovieID, &cr.MovieTitle, &cr.PersonID, &cr.Role, &character); err != nil {
			return nil, err
		}
		if character.Valid {
			cr.CharacterName = &character.String
		}
		p.Filmography = append(p.Filmography, cr)
	}
	return &p, rows.Err()
}

func (r *PeopleRepository) CreatePerson(name string) (*models.Person, error) {
	var id int
	err := r.db.QueryRow(`
		INSERT INTO person (name, created_at, modified_at)
		VALUES ($1, NOW(), NOW())
		RETURNING id`, name).Scan(&id)
	if err != nil {
		return nil, err
	}
	return r.GetPersonByID(id)
}

func (r *PeopleRepository) UpdatePersonName(id int, name string) error {
	_, err := r.db.Exec(`
		UPDATE person SET name = $1, modified_at = NOW()
		WHERE id = $2 AND is_deleted = FALSE`, name, id)
	return err
}

func (r *PeopleRepository) UpdatePersonDeleted(id int, isDeleted bool) error {
	_, err := r.db.Exec(`
		UPDATE person SET is_deleted = $1, modified_at = NOW()
		WHERE id = $2`, isDeleted, id)
	return err
}
