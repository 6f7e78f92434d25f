package artists

import (
	"net/http"

	"cloudstage/middleware"
	"cloudstage/models"
	"cloudstage/mq"
	"cloudstage/store"
	"cloudstage/utils"

	"github.com/julienschmidt/httprouter"
)

func handleFollowAction(w http.ResponseWriter, r *http.Request, ps httprouter.Params, action string) {
	email := middleware.EmailFromRequest(r)
	artistID := ps.ByName("id")

	var err error
	if action == "follow" {
		err = store.Artists.Follow(artistID, email)
	} else {
		err = store.Artists.Unfollow(artistID, email)
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Artist not found")
		return
	}

	method := "PUT"
	if action == "unfollow" {
		method = "DELETE"
	}
	go mq.Emit(r.Context(), action+"ed", models.Index{
		EntityType: "follow", EntityId: artistID, Method: method, ItemId: email,
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"ok":          true,
		"isFollowing": action == "follow",
	})
}

func FollowArtist(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	handleFollowAction(w, r, ps, "follow")
}

func UnfollowArtist(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	handleFollowAction(w, r, ps, "unfollow")
}

// GetFollowedArtists lists the artists the authenticated user follows.
func GetFollowedArtists(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	email := middleware.EmailFromRequest(r)
	utils.RespondWithJSON(w, http.StatusOK, store.Artists.FollowedBy(email))
}
