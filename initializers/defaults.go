package initializers

import (
	"database/sql"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// defaultGenres seeds the catalog filter dropdown on a fresh database.
var defaultGenres = []string{
	"Action",
	"Comedy",
	"Drama",
	"Horror",
	"Sci-Fi",
	"Thriller",
}

// InitDefaults is called once on application start to ensure that the
// default genres and the admin account exist.
func InitDefaults(db *sql.DB) error {
	for _, name := range defaultGenres {
		if err := ensureGenre(db, name); err != nil {
			return err
		}
	}
	return ensureAdminUser(db)
}

func ensureGenre(db *sql.DB, name string) error {
	var id int
	err := db.QueryRow("SELECT id FROM genre WHERE name = $1", name).Scan(&id)
	if err == sql.ErrNoRows {
		return db.QueryRow("INSERT INTO genre (name) VALUES ($1) RETURNING id", name).Scan(&id)
	}
	return err
}

// ensureAdminUser creates the store admin from ADMIN_USERNAME and
// ADMIN_PASSWORD. With no credentials configured, nothing is seeded and
// admin endpoints stay unreachable until an admin is created manually.
func ensureAdminUser(db *sql.DB) error {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		return nil
	}

	var id int
	err := db.QueryRow("SELECT id FROM users WHERE username = $1", username).Scan(&id)
	if err == nil {
		return nil
	}
	if err != sql.ErrNoRows {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return db.QueryRow(`
		INSERT INTO users (username, password_hash, is_admin, created_at)
		VALUES ($1, $2, TRUE, NOW())
		RETURNING id`, username, string(hash)).Scan(&id)
}
