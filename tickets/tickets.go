package tickets

import (
	"encoding/json"
	"net/http"

	"cloudstage/live"
	"cloudstage/middleware"
	"cloudstage/models"
	"cloudstage/monitoring"
	"cloudstage/mq"
	"cloudstage/pay"
	"cloudstage/status"
	"cloudstage/store"
	"cloudstage/utils"

	"github.com/julienschmidt/httprouter"
)

type guestDetails struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// purchasableEvent resolves the event and checks the marketplace gates
// shared by free claims and paid confirmations.
func purchasableEvent(w http.ResponseWriter, eventID string) (models.Event, bool) {
	if !store.AppStatus.Online() {
		utils.RespondWithError(w, http.StatusServiceUnavailable, "CloudStage is offline")
		return models.Event{}, false
	}
	event, err := store.Events.Get(eventID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Event not found")
		return models.Event{}, false
	}
	if event.Status != status.Approved {
		utils.RespondWithError(w, http.StatusForbidden, "Event is not open for ticketing")
		return models.Event{}, false
	}
	return event, true
}

func issueTicket(w http.ResponseWriter, r *http.Request, hub *live.Hub, event models.Event, email string, guest guestDetails, price float64) {
	ticket, created, err := store.Tickets.Purchase(models.PurchasedTicket{
		EventID:    event.EventID,
		UserEmail:  email,
		PricePaid:  price,
		GuestName:  guest.Name,
		GuestPhone: guest.Phone,
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to issue ticket")
		return
	}
	if !created {
		// Idempotent: return the existing ticket rather than a duplicate.
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"ticket": ticket, "alreadyOwned": true})
		return
	}

	hub.TicketIssued(event.EventID)
	monitoring.TicketIssued()
	go mq.Emit(r.Context(), "ticket-issued", models.Index{
		EntityType: "ticket", EntityId: ticket.TicketID, Method: "POST", ItemId: event.EventID,
	})

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"ticket": ticket, "alreadyOwned": false})
}

// ClaimFreeTicket issues a ticket for a free event directly.
func ClaimFreeTicket(hub *live.Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		event, ok := purchasableEvent(w, ps.ByName("eventid"))
		if !ok {
			return
		}
		if event.TicketPrice > 0 {
			utils.RespondWithError(w, http.StatusPaymentRequired, "Event requires paid checkout")
			return
		}

		var guest guestDetails
		json.NewDecoder(r.Body).Decode(&guest) // guest details are optional

		issueTicket(w, r, hub, event, middleware.EmailFromRequest(r), guest, 0)
	}
}

// CreatePaymentSession starts mock checkout for a paid event.
func CreatePaymentSession(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	event, ok := purchasableEvent(w, ps.ByName("eventid"))
	if !ok {
		return
	}
	if event.TicketPrice <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Event is free; claim the ticket directly")
		return
	}

	session, err := pay.CreateCheckoutSession(event.EventID, event.TicketPrice)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create payment session")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"data": utils.M{
			"sessionId":  session.SessionID,
			"paymentUrl": session.URL,
			"eventId":    session.EventID,
			"amount":     session.Amount,
		},
	})
}

// ConfirmPurchase completes mock checkout and issues the ticket. Calling it
// twice for the same event and user returns the first ticket unchanged.
func ConfirmPurchase(hub *live.Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		event, ok := purchasableEvent(w, ps.ByName("eventid"))
		if !ok {
			return
		}

		var body struct {
			SessionID string       `json:"sessionId"`
			Guest     guestDetails `json:"guest"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.SessionID == "" {
			utils.RespondWithError(w, http.StatusBadRequest, "Missing payment session")
			return
		}

		issueTicket(w, r, hub, event, middleware.EmailFromRequest(r), body.Guest, event.TicketPrice)
	}
}
