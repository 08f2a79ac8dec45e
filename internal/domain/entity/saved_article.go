package entity

import (
	"time"
)

// SavedArticle links a user to an article they bookmarked. The document id
// is derived from userID and articleID so saving twice overwrites in place.
type SavedArticle struct {
	ID        string    `json:"id" firestore:"id"`
	UserID    string    `json:"user_id" firestore:"userId"`
	ArticleID string    `json:"article_id" firestore:"articleId"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
