package movies

import (
	"encoding/json"
	"net/http"

	"cloudstage/models"
	"cloudstage/mq"
	"cloudstage/store"
	"cloudstage/utils"

	"github.com/julienschmidt/httprouter"
)

var validLanguages = map[string]bool{
	"English": true, "Hindi": true, "Tamil": true, "Telugu": true,
	"Spanish": true, "French": true, "Korean": true, "Japanese": true,
}

var validGenres = map[string]bool{
	"Action": true, "Comedy": true, "Drama": true, "Horror": true,
	"Romance": true, "Thriller": true, "Documentary": true, "Animation": true,
}

// AddMovie adds a movie to the catalog. Admin route; movies skip review and
// are immediately visible.
func AddMovie(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Language    string `json:"language"`
		Genre       string `json:"genre"`
		VideoURL    string `json:"video_url"`
		BannerURL   string `json:"banner_url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	switch {
	case in.Title == "":
		utils.RespondWithError(w, http.StatusBadRequest, "Title is required")
		return
	case in.VideoURL == "":
		utils.RespondWithError(w, http.StatusBadRequest, "Video URL is required")
		return
	case !validLanguages[in.Language]:
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown language")
		return
	case !validGenres[in.Genre]:
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown genre")
		return
	}

	movie := models.Movie{
		MovieID:     utils.GenerateRandomString(12),
		Title:       in.Title,
		Description: in.Description,
		Language:    in.Language,
		Genre:       in.Genre,
		VideoURL:    in.VideoURL,
		BannerURL:   in.BannerURL,
	}
	if err := store.Movies.Add(movie); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to add movie")
		return
	}

	go mq.Emit(r.Context(), "movie-created", models.Index{
		EntityType: "movie", EntityId: movie.MovieID, Method: "POST",
	})

	utils.RespondWithJSON(w, http.StatusCreated, movie)
}

// GetMovies lists the catalog, most recent first.
func GetMovies(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, store.Movies.All())
}

func GetMovie(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	movie, err := store.Movies.Get(ps.ByName("movieid"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Movie not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, movie)
}
