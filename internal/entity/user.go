// Package entity defines the entities and errors used in the application.
// It includes the User, Token and Link structs along with the sentinel errors
// returned by repositories and use cases.
package entity

import "time"

// User represents an account that owns tokens and links.
type User struct {
	ID           int64     // ID is the unique identifier of the user in the database.
	Name         string    // Name is the display name of the user.
	Email        string    // Email is the normalized, unique login of the user.
	PasswordHash string    // PasswordHash is the one-way hash of the user's password.
	IsSuperuser  bool      // IsSuperuser grants permission to register new users.
	CreatedAt    time.Time // CreatedAt is the timestamp when the user was created.
	UpdatedAt    time.Time // UpdatedAt is the timestamp when the user was last updated.
}
