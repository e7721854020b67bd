package post

import "time"

type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CanModify reports whether user may edit or delete p: only the author may,
// and an absent identity never may.
func CanModify(userID string, p *Post) bool {
	return userID != "" && p != nil && p.AuthorID == userID
}
