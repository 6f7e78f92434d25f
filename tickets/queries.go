package tickets

import (
	"net/http"

	"cloudstage/middleware"
	"cloudstage/store"
	"cloudstage/utils"

	"github.com/julienschmidt/httprouter"
)

// HasTicket answers the per-user ownership check for the authenticated user.
func HasTicket(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID := ps.ByName("eventid")
	email := middleware.EmailFromRequest(r)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"hasTicket": store.Tickets.HasTicketFor(eventID, email),
	})
}

// EventHasSales answers the weaker "any ticket exists for this event" query
// used by anonymous flows.
func EventHasSales(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID := ps.ByName("eventid")
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"hasSales": store.Tickets.HasAnyTicket(eventID),
	})
}

// MyTickets lists the authenticated user's tickets, most recent first.
func MyTickets(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	email := middleware.EmailFromRequest(r)
	utils.RespondWithJSON(w, http.StatusOK, store.Tickets.ForUser(email))
}
