package entity

import (
	"time"
)

// Categories is the fixed category set, in display order.
var Categories = []string{"Actualité", "Politique", "Sport", "Technologie", "Économie"}

type Article struct {
	ID       string `json:"id" firestore:"id"`
	Title    string `json:"title" firestore:"title"`
	Content  string `json:"content" firestore:"content"`
	Category string `json:"category" firestore:"category"`
	ImageURL string `json:"image_url,omitempty" firestore:"imageURL,omitempty"`

	AuthorID string `json:"author_id" firestore:"authorId"`
	// Cached at write time; not invalidated when the author renames.
	AuthorUsername string `json:"author_username" firestore:"authorUsername"`

	Views int `json:"views" firestore:"views"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
