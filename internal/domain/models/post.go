package model

import "time"

// Post is a published blog entry. Posts are written by an external admin
// tool; this service only reads them.
type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
