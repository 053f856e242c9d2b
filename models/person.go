package models

import "time"

type Person struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"createdAt"`
	ModifiedAt time.Time `json:"modifiedAt"`
	IsDeleted  bool      `json:"-"`
	// Filmography is populated only on single-person reads.
	Filmography []Credit `json:"filmography,omitempty"`
}

// Credit links a person to a movie in a given role.
// Role is one of "actor" or "director"; CharacterName applies to actors only.
type Credit struct {
	MovieID       int     `json:"movieId"`
	MovieTitle    string  `json:"movieTitle,omitempty"`
	PersonID      int     `json:"personId"`
	PersonName    string  `json:"personName,omitempty"`
	Role          string  `json:"role"`
	CharacterName *string `json:"characterName,omitempty"`
}

const (
	RoleActor    = "actor"
	RoleDirector = "director"
)

// ValidCreditRole reports whether role is one of the supported credit roles.
func ValidCreditRole(role string) bool {
	return role == RoleActor || role == RoleDirector
}
