package entity

import "time"

// Token is a live bearer token bound to a user. Only the hash of the secret is kept.
type Token struct {
	ID        int64
	UserID    int64
	Hash      string
	CreatedAt time.Time
}
