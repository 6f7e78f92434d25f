package models

import "time"

// PurchasedTicket is immutable after creation. (EventID, UserEmail) is the
// unique key preventing duplicate issuance.
type PurchasedTicket struct {
	TicketID     string    `json:"ticketid"`
	EventID      string    `json:"eventid"`
	UserEmail    string    `json:"user_email"`
	UniqueCode   string    `json:"uniquecode"`
	PricePaid    float64   `json:"price_paid"`
	PurchaseDate time.Time `json:"purchase_date"`

	// Optional guest contact details for anonymous checkouts
	GuestName  string `json:"guest_name,omitempty"`
	GuestPhone string `json:"guest_phone,omitempty"`
}
