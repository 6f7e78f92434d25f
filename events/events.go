package events

import (
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"cloudstage/middleware"
	"cloudstage/models"
	"cloudstage/mq"
	"cloudstage/status"
	"cloudstage/store"
	"cloudstage/utils"

	"github.com/julienschmidt/httprouter"
)

// timeNow is swapped in tests.
var timeNow = time.Now

type eventInput struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Category        string  `json:"category"`
	Genre           string  `json:"genre"`
	Language        string  `json:"language"`
	StartDateTime   string  `json:"start_date_time"`
	DurationMinutes int     `json:"duration_minutes"`
	StreamURL       string  `json:"stream_url"`
	BannerURL       string  `json:"banner_url"`
	TicketPrice     float64 `json:"ticket_price"`
}

func (in eventInput) validate() string {
	switch {
	case in.Title == "":
		return "Title is required"
	case in.Category == "":
		return "Category is required"
	case in.StreamURL == "":
		return "Stream URL is required"
	case in.DurationMinutes <= 0:
		return "Duration must be positive"
	case in.TicketPrice < 0:
		return "Ticket price cannot be negative"
	}
	if _, err := time.Parse(time.RFC3339, in.StartDateTime); err != nil {
		return "Start date-time must be RFC3339"
	}
	return ""
}

// withPhase stamps the derived display phase onto a response copy.
func withPhase(e models.Event, now time.Time) models.Event {
	e.Phase = e.PhaseAt(now)
	return e
}

// GetEvents lists approved events, boosted first, phases computed.
func GetEvents(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	now := time.Now()
	approved := store.Events.Approved()
	sort.SliceStable(approved, func(i, j int) bool {
		return approved[i].Boosted && !approved[j].Boosted
	})
	out := make([]models.Event, 0, len(approved))
	for _, e := range approved {
		out = append(out, withPhase(e, now))
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// GetEvent returns one event. Unapproved events are visible only to their
// owner and to admins; everyone else gets the same 404 as a missing id.
func GetEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	event, err := store.Events.Get(ps.ByName("eventid"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Event not found")
		return
	}
	if event.Status != status.Approved {
		email := middleware.EmailFromRequest(r)
		isOwner := email != "" && email == event.ArtistEmail
		if !isOwner && !middleware.RequestHasRole(r, "admin") {
			utils.RespondWithError(w, http.StatusNotFound, "Event not found")
			return
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, withPhase(event, time.Now()))
}

// GetMyEvents lists the authenticated artist's own submissions, any status.
func GetMyEvents(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	email := middleware.EmailFromRequest(r)
	now := time.Now()
	own := store.Events.ByOwner(email)
	out := make([]models.Event, 0, len(own))
	for _, e := range own {
		out = append(out, withPhase(e, now))
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// CreateEvent submits a new event for review. Requires an approved artist.
func CreateEvent(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	email := middleware.EmailFromRequest(r)
	artist, err := store.Artists.ByEmail(email)
	if err != nil {
		utils.RespondWithError(w, http.StatusForbidden, "Artist profile not found")
		return
	}
	if artist.Status != status.Approved {
		utils.RespondWithError(w, http.StatusForbidden, "Artist is not approved")
		return
	}

	var in eventInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if msg := in.validate(); msg != "" {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}
	start, _ := time.Parse(time.RFC3339, in.StartDateTime)

	event := models.Event{
		EventID:         utils.GenerateRandomString(12),
		Title:           in.Title,
		Description:     in.Description,
		Category:        in.Category,
		Genre:           in.Genre,
		Language:        in.Language,
		ArtistName:      artist.Name,
		ArtistEmail:     artist.Email,
		StartDateTime:   start,
		DurationMinutes: in.DurationMinutes,
		StreamURL:       in.StreamURL,
		BannerURL:       in.BannerURL,
		TicketPrice:     in.TicketPrice,
	}
	if err := store.Events.Add(event); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create event")
		return
	}

	store.Users.ConsumeSubscriptionEvent(email)

	go mq.Emit(r.Context(), "event-created", models.Index{
		EntityType: "event", EntityId: event.EventID, Method: "POST",
	})

	event.Status = status.Pending
	utils.RespondWithJSON(w, http.StatusCreated, event)
}

// EditEvent replaces an owned event. The edit sends the event back through
// review: its status resets to Pending.
func EditEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("eventid")
	email := middleware.EmailFromRequest(r)

	existing, err := store.Events.Get(id)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Event not found")
		return
	}
	if existing.ArtistEmail != email {
		utils.RespondWithError(w, http.StatusForbidden, "Not your event")
		return
	}

	var in eventInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if msg := in.validate(); msg != "" {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}
	start, _ := time.Parse(time.RFC3339, in.StartDateTime)

	updated := existing
	updated.Title = in.Title
	updated.Description = in.Description
	updated.Category = in.Category
	updated.Genre = in.Genre
	updated.Language = in.Language
	updated.StartDateTime = start
	updated.DurationMinutes = in.DurationMinutes
	updated.StreamURL = in.StreamURL
	updated.BannerURL = in.BannerURL
	updated.TicketPrice = in.TicketPrice

	if err := store.Events.Update(updated); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update event")
		return
	}

	go mq.Emit(r.Context(), "event-updated", models.Index{
		EntityType: "event", EntityId: id, Method: "PUT",
	})

	updated.Status = status.Pending
	utils.RespondWithJSON(w, http.StatusOK, updated)
}
