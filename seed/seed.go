// Package seed holds the demo datasets written on first load, and again
// whenever a stored document turns out to be unreadable.
package seed

import (
	"time"

	"cloudstage/models"
	"cloudstage/status"
	"cloudstage/store"
)

// Demo returns the first-run datasets for every entity store.
func Demo() store.Seeds {
	now := time.Now()
	return store.Seeds{
		Events: []models.Event{
			{
				EventID:         "demo-event-1",
				Title:           "Acoustic Sessions Vol. 1",
				Description:     "An intimate unplugged evening streamed live.",
				Category:        "Music",
				Genre:           "Acoustic",
				Language:        "English",
				ArtistName:      "The Paper Kites Tribute",
				ArtistEmail:     "demo.artist@cloudstage.live",
				StartDateTime:   now.Add(48 * time.Hour),
				DurationMinutes: 90,
				StreamURL:       "https://www.youtube.com/watch?v=jfKfPfyJRdk",
				BannerURL:       "/static/eventpic/demo-event-1.jpg",
				TicketPrice:     0,
				Status:          status.Approved,
				CreatedAt:       now,
				UpdatedAt:       now,
			},
			{
				EventID:         "demo-event-2",
				Title:           "Standup Night: Open Mic",
				Description:     "Fresh comedians, zero mercy.",
				Category:        "Comedy",
				Genre:           "Standup",
				Language:        "English",
				ArtistName:      "Laugh Factory Live",
				ArtistEmail:     "demo.artist@cloudstage.live",
				StartDateTime:   now.Add(-2 * time.Hour),
				DurationMinutes: 240,
				StreamURL:       "https://www.youtube.com/watch?v=5qap5aO4i9A",
				BannerURL:       "/static/eventpic/demo-event-2.jpg",
				TicketPrice:     4.99,
				Status:          status.Approved,
				CreatedAt:       now,
				UpdatedAt:       now,
			},
		},
		Artists: []models.Artist{
			{
				ArtistID: "demo-artist-1",
				Type:     "Band",
				Name:     "The Paper Kites Tribute",
				Category: "Music",
				Email:    "demo.artist@cloudstage.live",
				Location: "Melbourne",
				Socials: map[string]string{
					"youtube": "https://youtube.com/@demoartist",
				},
				Bio:        "Indie folk covers, every Friday.",
				Status:     status.Approved,
				IsVerified: true,
				CreatedAt:  now,
			},
		},
		Movies: []models.Movie{
			{
				MovieID:     "demo-movie-1",
				Title:       "Night of the Living Dead",
				Description: "The 1968 public-domain classic.",
				Language:    "English",
				Genre:       "Horror",
				VideoURL:    "https://www.youtube.com/watch?v=pElSu_ECJGc",
				BannerURL:   "/static/moviepic/demo-movie-1.jpg",
				CreatedAt:   now,
			},
		},
		Users: nil,
	}
}
