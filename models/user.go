package models

import "time"

// User represents an account entity used for authentication and for scoping
// every transaction query. Sensitive fields must never be exposed outside
// trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is the unique login identifier. It is compared exactly as stored
	// (case-sensitive).
	Email string `json:"email"`

	// Name is the display name of the user. Mutable by its owner.
	Name string `json:"name"`

	// PasswordHash holds the bcrypt hash of the user's password.
	// It is never serialized to JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// RegisterRequest is the payload of the registration endpoint.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Credentials is the payload of the login endpoint.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NameChange is the payload of the profile name update endpoint.
type NameChange struct {
	Name string `json:"name"`
}

// PasswordChange is the payload of the password change endpoint.
// NewPassword and ConfirmPassword must match; CurrentPassword is verified
// against the stored hash before anything is written.
type PasswordChange struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}
