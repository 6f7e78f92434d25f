package store

import (
	"time"

	"cloudstage/models"
	"cloudstage/utils"
)

// TicketStore wraps the purchased-tickets collection. Tickets are never
// mutated after creation.
type TicketStore struct {
	c *Collection[models.PurchasedTicket]
}

// Purchase issues a ticket for (eventID, userEmail) unless one already
// exists. The duplicate check and the insert run under one lock. Returns
// the ticket and whether it was newly issued.
func (s *TicketStore) Purchase(ticket models.PurchasedTicket) (models.PurchasedTicket, bool, error) {
	if ticket.TicketID == "" {
		ticket.TicketID = utils.GenerateRandomString(12)
	}
	if ticket.UniqueCode == "" {
		ticket.UniqueCode = utils.GenerateRandomDigitString(8)
	}
	ticket.PurchaseDate = time.Now()

	created, err := s.c.InsertIfAbsent(func(existing models.PurchasedTicket) bool {
		return existing.EventID == ticket.EventID && existing.UserEmail == ticket.UserEmail
	}, ticket)
	if err != nil {
		return models.PurchasedTicket{}, false, err
	}
	if !created {
		existing, ferr := s.c.Find(func(t models.PurchasedTicket) bool {
			return t.EventID == ticket.EventID && t.UserEmail == ticket.UserEmail
		})
		return existing, false, ferr
	}
	return ticket, true, nil
}

// HasTicketFor reports whether the user holds a ticket for the event.
func (s *TicketStore) HasTicketFor(eventID, email string) bool {
	return s.c.Count(func(t models.PurchasedTicket) bool {
		return t.EventID == eventID && t.UserEmail == email
	}) > 0
}

// HasAnyTicket reports whether any ticket at all exists for the event,
// regardless of purchaser.
func (s *TicketStore) HasAnyTicket(eventID string) bool {
	return s.c.Count(func(t models.PurchasedTicket) bool {
		return t.EventID == eventID
	}) > 0
}

// ForUser returns all tickets held by the given email, most recent first.
func (s *TicketStore) ForUser(email string) []models.PurchasedTicket {
	return s.c.Filter(func(t models.PurchasedTicket) bool { return t.UserEmail == email })
}

// ForEvent returns all tickets issued for the event.
func (s *TicketStore) ForEvent(eventID string) []models.PurchasedTicket {
	return s.c.Filter(func(t models.PurchasedTicket) bool { return t.EventID == eventID })
}

// ForUserAndEvent finds the user's ticket for one event.
func (s *TicketStore) ForUserAndEvent(email, eventID string) (models.PurchasedTicket, error) {
	return s.c.Find(func(t models.PurchasedTicket) bool {
		return t.EventID == eventID && t.UserEmail == email
	})
}

// Lookup finds one ticket by event and unique code.
func (s *TicketStore) Lookup(eventID, code string) (models.PurchasedTicket, error) {
	return s.c.Find(func(t models.PurchasedTicket) bool {
		return t.EventID == eventID && t.UniqueCode == code
	})
}

// Len returns the number of issued tickets.
func (s *TicketStore) Len() int {
	return s.c.Len()
}
