package domain

import "time"

// Comment is customer feedback shown on the landing page.
type Comment struct {
	ID        int64
	UserID    int64
	Comment   string
	Rating    int
	CreatedAt time.Time
}
