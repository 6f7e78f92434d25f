package artists

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cloudstage/globals"
	"cloudstage/models"
	"cloudstage/status"
	"cloudstage/storage"
	"cloudstage/store"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStores(t *testing.T, seeds store.Seeds) {
	t.Helper()
	require.NoError(t, store.Init(storage.NewMemory(), seeds))
}

func authedRequest(method, target, body, email string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := context.WithValue(req.Context(), globals.EmailKey, email)
	return req.WithContext(ctx)
}

const validRegistration = `{
	"type": "Band",
	"name": "The Demo Band",
	"category": "Rock",
	"socials": {"instagram": "https://instagram.com/demoband"}
}`

func TestRegisterArtist(t *testing.T) {
	setupStores(t, store.Seeds{})

	rec := httptest.NewRecorder()
	RegisterArtist(rec, authedRequest(http.MethodPost, "/api/artist/register", validRegistration, "band@x.com"), nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	var created models.Artist
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, status.Pending, created.Status)
	assert.Equal(t, "band@x.com", created.Email)

	// One profile per email.
	rec = httptest.NewRecorder()
	RegisterArtist(rec, authedRequest(http.MethodPost, "/api/artist/register", validRegistration, "band@x.com"), nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegisterArtist_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"type":"Solo","socials":{"youtube":"https://youtube.com/x"}}`},
		{"bad type", `{"type":"Orchestra","name":"X","socials":{"youtube":"https://youtube.com/x"}}`},
		{"no socials", `{"type":"Solo","name":"X","socials":{}}`},
		{"unknown platform", `{"type":"Solo","name":"X","socials":{"myspace":"https://myspace.com/x"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupStores(t, store.Seeds{})
			rec := httptest.NewRecorder()
			RegisterArtist(rec, authedRequest(http.MethodPost, "/api/artist/register", tt.body, "band@x.com"), nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestUpdateArtistStatus_ApprovalGrantsRole(t *testing.T) {
	setupStores(t, store.Seeds{
		Artists: []models.Artist{{ArtistID: "ar1", Email: "band@x.com", Status: status.Pending}},
		Users:   []models.User{{UserID: "u1", Email: "band@x.com", Role: []string{"viewer"}}},
	})
	ps := httprouter.Params{{Key: "id", Value: "ar1"}}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/artists/ar1/status", strings.NewReader(`{"status":"Approved"}`))
	UpdateArtistStatus(rec, req, ps)
	require.Equal(t, http.StatusOK, rec.Code)

	user, err := store.Users.ByEmail("band@x.com")
	require.NoError(t, err)
	assert.True(t, user.HasRole("artist"))

	// Decisions are terminal.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPatch, "/api/artists/ar1/status", strings.NewReader(`{"status":"Rejected","reason":"bad docs"}`))
	UpdateArtistStatus(rec, req, ps)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSubmitVerification_RequiresApprovedArtist(t *testing.T) {
	setupStores(t, store.Seeds{
		Artists: []models.Artist{{ArtistID: "ar1", Email: "band@x.com", Status: status.Pending}},
	})

	rec := httptest.NewRecorder()
	SubmitVerification(rec, authedRequest(http.MethodPost, "/api/artist/verification", `{"reason":"touring act"}`, "band@x.com"), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestVerificationReviewFlow(t *testing.T) {
	setupStores(t, store.Seeds{
		Artists: []models.Artist{{ArtistID: "ar1", Email: "band@x.com", Status: status.Approved}},
	})
	ps := httprouter.Params{{Key: "id", Value: "ar1"}}

	body := `{"reason":"touring act","links":"https://press.example/a, https://press.example/b,https://press.example/a"}`
	rec := httptest.NewRecorder()
	SubmitVerification(rec, authedRequest(http.MethodPost, "/api/artist/verification", body, "band@x.com"), nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	artist, err := store.Artists.Get("ar1")
	require.NoError(t, err)
	require.NotNil(t, artist.Verification)
	assert.Equal(t, []string{"https://press.example/a", "https://press.example/b"}, artist.Verification.Links)

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/artists/ar1/verification", strings.NewReader(`{"status":"Approved"}`))
	ReviewVerification(rec, req, ps)
	require.Equal(t, http.StatusOK, rec.Code)

	artist, err = store.Artists.Get("ar1")
	require.NoError(t, err)
	assert.True(t, artist.IsVerified)

	// Resubmission after a decision is rejected.
	rec = httptest.NewRecorder()
	SubmitVerification(rec, authedRequest(http.MethodPost, "/api/artist/verification", `{"reason":"again"}`, "band@x.com"), nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestFollowEndpoints(t *testing.T) {
	setupStores(t, store.Seeds{
		Artists: []models.Artist{{ArtistID: "ar1", Email: "band@x.com", Status: status.Approved}},
	})
	ps := httprouter.Params{{Key: "id", Value: "ar1"}}

	rec := httptest.NewRecorder()
	FollowArtist(rec, authedRequest(http.MethodPost, "/api/artists/ar1/follow", "", "fan@x.com"), ps)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	GetFollowedArtists(rec, authedRequest(http.MethodGet, "/api/user/followed-artists", "", "fan@x.com"), nil)
	var followed []models.Artist
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &followed))
	require.Len(t, followed, 1)
	assert.Equal(t, "ar1", followed[0].ArtistID)

	rec = httptest.NewRecorder()
	UnfollowArtist(rec, authedRequest(http.MethodDelete, "/api/artists/ar1/follow", "", "fan@x.com"), ps)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	GetFollowedArtists(rec, authedRequest(http.MethodGet, "/api/user/followed-artists", "", "fan@x.com"), nil)
	followed = nil
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &followed))
	assert.Empty(t, followed)
}

func TestGetArtistByID_EmbedsIsFollowing(t *testing.T) {
	setupStores(t, store.Seeds{
		Artists: []models.Artist{{
			ArtistID:  "ar1",
			Email:     "band@x.com",
			Status:    status.Approved,
			Followers: []string{"fan@x.com"},
		}},
	})
	ps := httprouter.Params{{Key: "id", Value: "ar1"}}

	rec := httptest.NewRecorder()
	GetArtistByID(rec, authedRequest(http.MethodGet, "/api/artists/ar1", "", "fan@x.com"), ps)
	var out struct {
		IsFollowing bool `json:"isFollowing"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.True(t, out.IsFollowing)

	// Anonymous callers are never "following".
	rec = httptest.NewRecorder()
	GetArtistByID(rec, httptest.NewRequest(http.MethodGet, "/api/artists/ar1", nil), ps)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.False(t, out.IsFollowing)
}
