package artists

import (
	"encoding/json"
	"errors"
	"net/http"

	"cloudstage/middleware"
	"cloudstage/models"
	"cloudstage/mq"
	"cloudstage/store"
	"cloudstage/utils"

	"github.com/julienschmidt/httprouter"
)

var allowedSocials = map[string]bool{
	"instagram": true,
	"youtube":   true,
	"facebook":  true,
}

type registerInput struct {
	Type     string            `json:"type"`
	Name     string            `json:"name"`
	Category string            `json:"category"`
	Photo    string            `json:"photo"`
	Phone    string            `json:"phone"`
	Address  string            `json:"address"`
	Location string            `json:"location"`
	Socials  map[string]string `json:"socials"`
	Bio      string            `json:"bio"`
}

func (in registerInput) validate() string {
	if in.Name == "" {
		return "Name is required"
	}
	if in.Type != "Solo" && in.Type != "Band" {
		return "Type must be Solo or Band"
	}
	links := 0
	for platform, url := range in.Socials {
		if !allowedSocials[platform] {
			return "Unknown social platform: " + platform
		}
		if url != "" {
			links++
		}
	}
	if links == 0 {
		return "At least one social link is required"
	}
	return ""
}

// RegisterArtist creates an artist profile pending admin approval, tied to
// the authenticated user's email.
func RegisterArtist(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	email := middleware.EmailFromRequest(r)

	var in registerInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if msg := in.validate(); msg != "" {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}

	artist := models.Artist{
		ArtistID: utils.GenerateRandomString(12),
		Type:     in.Type,
		Name:     in.Name,
		Category: in.Category,
		Photo:    in.Photo,
		Email:    email,
		Phone:    in.Phone,
		Address:  in.Address,
		Location: in.Location,
		Socials:  in.Socials,
		Bio:      in.Bio,
	}
	if err := store.Artists.Add(artist); err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			utils.RespondWithError(w, http.StatusConflict, "Artist already registered for this email")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to register artist")
		return
	}

	go mq.Emit(r.Context(), "artist-created", models.Index{
		EntityType: "artist", EntityId: artist.ArtistID, Method: "POST",
	})

	utils.RespondWithJSON(w, http.StatusCreated, artist)
}

// GetArtists lists publicly visible (approved) artists.
func GetArtists(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, store.Artists.Approved())
}

func GetArtistByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	artist, err := store.Artists.Get(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Artist not found")
		return
	}

	isFollowing := false
	if email := middleware.EmailFromRequest(r); email != "" {
		isFollowing = artist.FollowedBy(email)
	}

	resp := struct {
		models.Artist
		IsFollowing bool `json:"isFollowing"`
	}{
		Artist:      artist,
		IsFollowing: isFollowing,
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetMyArtistProfile returns the authenticated user's own artist profile,
// whatever its review status.
func GetMyArtistProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	artist, err := store.Artists.ByEmail(middleware.EmailFromRequest(r))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Artist profile not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, artist)
}
