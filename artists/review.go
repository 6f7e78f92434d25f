package artists

import (
	"encoding/json"
	"errors"
	"net/http"

	"cloudstage/middleware"
	"cloudstage/models"
	"cloudstage/mq"
	"cloudstage/status"
	"cloudstage/store"
	"cloudstage/utils"

	"github.com/julienschmidt/httprouter"
)

func respondReviewError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Artist not found")
	case errors.Is(err, status.ErrAlreadyDecided):
		utils.RespondWithError(w, http.StatusConflict, "Review already decided")
	case errors.Is(err, status.ErrUnknownStatus):
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown status")
	case errors.Is(err, store.ErrVerificationExists):
		utils.RespondWithError(w, http.StatusConflict, "Verification request already submitted")
	case errors.Is(err, store.ErrNoVerification):
		utils.RespondWithError(w, http.StatusNotFound, "No verification request")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update artist")
	}
}

// UpdateArtistStatus decides an artist registration. Admin route. A
// rejection carries a reason shown to the artist.
func UpdateArtistStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	var body struct {
		Status status.Review `json:"status"`
		Reason string        `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if err := store.Artists.SetStatus(id, body.Status, body.Reason); err != nil {
		respondReviewError(w, err)
		return
	}

	// Approved artists gain the artist role on their user account.
	if body.Status == status.Approved {
		if artist, err := store.Artists.Get(id); err == nil {
			store.Users.AddRole(artist.Email, "artist")
		}
	}

	go mq.Emit(r.Context(), "artist-status", models.Index{
		EntityType: "artist", EntityId: id, Method: "PATCH", ItemType: string(body.Status),
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true, "status": body.Status})
}

// SubmitVerification lets an approved artist request the verified badge.
func SubmitVerification(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	email := middleware.EmailFromRequest(r)
	artist, err := store.Artists.ByEmail(email)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Artist profile not found")
		return
	}
	if artist.Status != status.Approved {
		utils.RespondWithError(w, http.StatusForbidden, "Artist is not approved")
		return
	}

	var in struct {
		Reason   string `json:"reason"`
		Links    string `json:"links"` // comma-separated
		VideoURL string `json:"video_url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if in.Reason == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Reason is required")
		return
	}

	req := models.VerificationRequest{
		Reason:   in.Reason,
		Links:    utils.SplitLinks(in.Links),
		VideoURL: in.VideoURL,
	}
	if err := store.Artists.SubmitVerification(artist.ArtistID, req); err != nil {
		respondReviewError(w, err)
		return
	}

	go mq.Emit(r.Context(), "verification-submitted", models.Index{
		EntityType: "verification", EntityId: artist.ArtistID, Method: "POST",
	})

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"ok": true, "status": status.Pending})
}

// ReviewVerification decides a pending verification request. Admin route.
func ReviewVerification(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	var body struct {
		Status status.Review `json:"status"`
		Reason string        `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if err := store.Artists.SetVerificationStatus(id, body.Status, body.Reason); err != nil {
		respondReviewError(w, err)
		return
	}

	go mq.Emit(r.Context(), "verification-status", models.Index{
		EntityType: "verification", EntityId: id, Method: "PATCH", ItemType: string(body.Status),
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true, "status": body.Status})
}
