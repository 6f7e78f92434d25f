package models

import "time"

// Movie has no review workflow: admin-added movies are immediately visible.
type Movie struct {
	MovieID     string    `json:"movieid"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Language    string    `json:"language"`
	Genre       string    `json:"genre"`
	VideoURL    string    `json:"video_url"`
	BannerURL   string    `json:"banner_url"`
	CreatedAt   time.Time `json:"created_at"`
}
