package models

import (
	"time"

	"cloudstage/status"
)

type Event struct {
	EventID         string        `json:"eventid"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	Category        string        `json:"category"`
	Genre           string        `json:"genre"`
	Language        string        `json:"language"`
	ArtistName      string        `json:"artist_name"`
	ArtistEmail     string        `json:"artist_email"` // owner reference
	StartDateTime   time.Time     `json:"start_date_time"`
	DurationMinutes int           `json:"duration_minutes"`
	StreamURL       string        `json:"stream_url"`
	BannerURL       string        `json:"banner_url"`
	TicketPrice     float64       `json:"ticket_price"`
	Boosted         bool          `json:"boosted"`
	Status          status.Review `json:"status"`
	PhaseOverride   status.Phase  `json:"phase_override,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`

	// Computed for responses, never persisted as truth
	Phase status.Phase `json:"phase,omitempty"`
}

// EndDateTime is the derived end of the event window.
func (e Event) EndDateTime() time.Time {
	if e.StartDateTime.IsZero() {
		return time.Time{}
	}
	return e.StartDateTime.Add(time.Duration(e.DurationMinutes) * time.Minute)
}

// PhaseAt returns the display phase for the event at the given instant.
func (e Event) PhaseAt(now time.Time) status.Phase {
	return status.PhaseAt(e.StartDateTime, e.EndDateTime(), e.PhaseOverride, now)
}
