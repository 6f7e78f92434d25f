package models

import "time"

type User struct {
	UserID        string    `json:"userid"`
	Name          string    `json:"name,omitempty"`
	Email         string    `json:"email"` // identity
	PasswordHash  string    `json:"password_hash"`
	Role          []string  `json:"role"` // viewer, artist, admin
	CreatedAt     time.Time `json:"created_at"`
	LastLogin     time.Time `json:"last_login"`
	RefreshToken  string    `json:"refresh_token,omitempty"` // sha256 of the issued token
	RefreshExpiry time.Time `json:"refreshexp,omitempty"`

	Subscription *Subscription `json:"subscription,omitempty"`
}

// Subscription tracks an artist's plan and how many events it has used.
type Subscription struct {
	Plan       string    `json:"plan"`
	StartDate  time.Time `json:"start_date"`
	ExpiryDate time.Time `json:"expiry_date"`
	EventsUsed int       `json:"events_used"`
	EventQuota int       `json:"event_quota"`
}

// HasRole reports whether the user carries the given role.
func (u User) HasRole(role string) bool {
	for _, r := range u.Role {
		if r == role {
			return true
		}
	}
	return false
}
