package admin

import (
	"encoding/json"
	"net/http"

	"cloudstage/live"
	"cloudstage/store"
	"cloudstage/utils"

	"github.com/julienschmidt/httprouter"
)

// GetPendingEvents returns the event review queue.
//
// Endpoint: GET /api/admin/events/pending
func GetPendingEvents(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, store.Events.Pending())
}

// GetPendingArtists returns artist registrations awaiting review.
func GetPendingArtists(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, store.Artists.Pending())
}

// GetPendingVerifications returns artists with undecided verification
// requests.
func GetPendingVerifications(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, store.Artists.PendingVerifications())
}

// GetAllEvents returns every event regardless of status, for the admin UI.
func GetAllEvents(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, store.Events.All())
}

// GetAppStatus reports the global online/offline flag. Public route: pages
// gate ticketing and playback on it.
func GetAppStatus(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"online": store.AppStatus.Online()})
}

// SetAppStatus flips the global flag and notifies connected clients.
func SetAppStatus(hub *live.Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		var body struct {
			Online bool `json:"online"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
			return
		}
		if err := store.AppStatus.SetOnline(body.Online); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update app status")
			return
		}
		hub.AppStatus(body.Online)
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true, "online": body.Online})
	}
}
