package events

import (
	"encoding/json"
	"errors"
	"net/http"

	"cloudstage/live"
	"cloudstage/models"
	"cloudstage/mq"
	"cloudstage/status"
	"cloudstage/store"
	"cloudstage/utils"

	"github.com/julienschmidt/httprouter"
)

// UpdateEventStatus patches only the review status field. Admin route.
func UpdateEventStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("eventid")

	var body struct {
		Status status.Review `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if err := store.Events.SetStatus(id, body.Status); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Event not found")
		case errors.Is(err, status.ErrUnknownStatus):
			utils.RespondWithError(w, http.StatusBadRequest, "Unknown status")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update status")
		}
		return
	}

	go mq.Emit(r.Context(), "event-status", models.Index{
		EntityType: "event", EntityId: id, Method: "PATCH", ItemType: string(body.Status),
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true, "status": body.Status})
}

// BoostEvent toggles the boosted flag. Admin route.
func BoostEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("eventid")

	var body struct {
		Boosted bool `json:"boosted"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if err := store.Events.SetBoosted(id, body.Boosted); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Event not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true, "boosted": body.Boosted})
}

// SetPhase pins or clears the admin phase override and notifies the event's
// live room. An empty phase goes back to deriving from the event window.
func SetPhase(hub *live.Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		id := ps.ByName("eventid")

		var body struct {
			Phase status.Phase `json:"phase"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
			return
		}
		switch body.Phase {
		case "", status.Upcoming, status.Live, status.Past:
		default:
			utils.RespondWithError(w, http.StatusBadRequest, "Unknown phase")
			return
		}

		if err := store.Events.SetPhaseOverride(id, body.Phase); err != nil {
			utils.RespondWithError(w, http.StatusNotFound, "Event not found")
			return
		}

		event, err := store.Events.Get(id)
		if err == nil {
			hub.EventPhase(id, string(event.PhaseAt(timeNow())))
		}
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true})
	}
}
