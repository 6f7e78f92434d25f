package models

import (
	"time"

	"cloudstage/status"
)

type Artist struct {
	ArtistID        string               `json:"artistid"`
	Type            string               `json:"type"` // Solo or Band
	Name            string               `json:"name"`
	Category        string               `json:"category"`
	Photo           string               `json:"photo"`
	Email           string               `json:"email"` // unique, login identity
	Phone           string               `json:"phone"`
	Address         string               `json:"address"`
	Location        string               `json:"location"`
	Socials         map[string]string    `json:"socials"` // instagram/youtube/facebook
	Bio             string               `json:"bio"`
	Status          status.Review        `json:"status"`
	RejectionReason string               `json:"rejection_reason,omitempty"`
	IsVerified      bool                 `json:"is_verified"`
	Followers       []string             `json:"followers,omitempty"` // user emails
	Verification    *VerificationRequest `json:"verification,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
}

// VerificationRequest is embedded in Artist; created once by the artist and
// terminal-transitioned once by an admin.
type VerificationRequest struct {
	Reason          string        `json:"reason"`
	Links           []string      `json:"links,omitempty"`
	VideoURL        string        `json:"video_url,omitempty"`
	Status          status.Review `json:"status"`
	RejectionReason string        `json:"rejection_reason,omitempty"`
	SubmittedAt     time.Time     `json:"submitted_at"`
}

// FollowedBy reports whether the given user email follows the artist.
func (a Artist) FollowedBy(email string) bool {
	for _, f := range a.Followers {
		if f == email {
			return true
		}
	}
	return false
}
