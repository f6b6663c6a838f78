package entity

import "time"

// Link represents a shortened URL owned by a user.
type Link struct {
	ID          int64     // ID is the unique identifier of the link in the database.
	UserID      int64     // UserID references the owner of the link.
	OriginalURL string    // OriginalURL is the full URL that the short token resolves to.
	ShortToken  string    // ShortToken is the unique string identifying the link.
	IsPrivate   bool      // IsPrivate hides the link from show and redirect.
	CreatedAt   time.Time // CreatedAt is the timestamp when the link was created.
	UpdatedAt   time.Time // UpdatedAt is the timestamp when the link was last updated.
}
