package store

import (
	"cloudstage/models"
	"cloudstage/storage"
)

// Process-wide stores, initialized once at boot.
var (
	Events    *EventStore
	Artists   *ArtistStore
	Movies    *MovieStore
	Tickets   *TicketStore
	Users     *UserStore
	AppStatus *AppStatusStore
)

// Storage keys, one JSON document per entity type.
const (
	KeyEvents    = "events"
	KeyArtists   = "artists"
	KeyMovies    = "movies"
	KeyTickets   = "purchased_tickets"
	KeyUsers     = "users"
	KeyAppStatus = "appstatus"
)

// Seeds holds the first-run demo datasets.
type Seeds struct {
	Events  []models.Event
	Artists []models.Artist
	Movies  []models.Movie
	Users   []models.User
}

// Init loads every store from the backend, seeding demo data on first run.
func Init(backend storage.Backend, seeds Seeds) error {
	events, err := NewCollection(backend, KeyEvents, seeds.Events)
	if err != nil {
		return err
	}
	artists, err := NewCollection(backend, KeyArtists, seeds.Artists)
	if err != nil {
		return err
	}
	movies, err := NewCollection(backend, KeyMovies, seeds.Movies)
	if err != nil {
		return err
	}
	tickets, err := NewCollection[models.PurchasedTicket](backend, KeyTickets, nil)
	if err != nil {
		return err
	}
	users, err := NewCollection(backend, KeyUsers, seeds.Users)
	if err != nil {
		return err
	}
	appStatus, err := NewAppStatusStore(backend, KeyAppStatus)
	if err != nil {
		return err
	}

	Events = &EventStore{c: events}
	Artists = &ArtistStore{c: artists}
	Movies = &MovieStore{c: movies}
	Tickets = &TicketStore{c: tickets}
	Users = &UserStore{c: users}
	AppStatus = appStatus
	return nil
}
