package models

import "time"

type Movie struct {
	ID             int       `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	PriceCents     int       `json:"priceCents"`
	ReleaseYear    int       `json:"releaseYear"`
	RuntimeMinutes int       `json:"runtimeMinutes"`
	PosterID       *string   `json:"posterId"`
	Genres         []string  `json:"genres"`
	Credits        []Credit  `json:"credits,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	ModifiedAt     time.Time `json:"modifiedAt"`
	IsDeleted      bool      `json:"-"`
}
