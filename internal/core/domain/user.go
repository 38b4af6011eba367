package domain

import "time"

// User is a user record created from a verified identity claim.
// The identity provider owns credentials; we only keep profile data.
type User struct {
	ID          string     `json:"id"` // stable subject identifier from the provider
	Email       string     `json:"email,omitempty"`
	Name        string     `json:"name,omitempty"`
	Picture     string     `json:"picture,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}
