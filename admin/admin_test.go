package admin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cloudstage/live"
	"cloudstage/models"
	"cloudstage/status"
	"cloudstage/storage"
	"cloudstage/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStores(t *testing.T, seeds store.Seeds) {
	t.Helper()
	require.NoError(t, store.Init(storage.NewMemory(), seeds))
}

func TestPendingQueues(t *testing.T) {
	setupStores(t, store.Seeds{
		Events: []models.Event{
			{EventID: "ev1", Status: status.Pending},
			{EventID: "ev2", Status: status.Approved},
		},
		Artists: []models.Artist{
			{ArtistID: "ar1", Status: status.Pending},
			{ArtistID: "ar2", Status: status.Approved, Verification: &models.VerificationRequest{Status: status.Pending}},
		},
	})

	rec := httptest.NewRecorder()
	GetPendingEvents(rec, httptest.NewRequest(http.MethodGet, "/api/admin/events/pending", nil), nil)
	var events []models.Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &events))
	require.Len(t, events, 1)
	assert.Equal(t, "ev1", events[0].EventID)

	rec = httptest.NewRecorder()
	GetPendingArtists(rec, httptest.NewRequest(http.MethodGet, "/api/admin/artists/pending", nil), nil)
	var artists []models.Artist
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &artists))
	require.Len(t, artists, 1)
	assert.Equal(t, "ar1", artists[0].ArtistID)

	rec = httptest.NewRecorder()
	GetPendingVerifications(rec, httptest.NewRequest(http.MethodGet, "/api/admin/verifications/pending", nil), nil)
	var verifications []models.Artist
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &verifications))
	require.Len(t, verifications, 1)
	assert.Equal(t, "ar2", verifications[0].ArtistID)

	rec = httptest.NewRecorder()
	GetAllEvents(rec, httptest.NewRequest(http.MethodGet, "/api/admin/events", nil), nil)
	var all []models.Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	assert.Len(t, all, 2)
}

func TestAppStatusToggle(t *testing.T) {
	setupStores(t, store.Seeds{})
	hub := live.NewHub()
	go hub.Run()
	t.Cleanup(hub.Stop)

	rec := httptest.NewRecorder()
	GetAppStatus(rec, httptest.NewRequest(http.MethodGet, "/api/app/status", nil), nil)
	assert.JSONEq(t, `{"online":true}`, rec.Body.String())

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/admin/app/status", strings.NewReader(`{"online":false}`))
	SetAppStatus(hub)(rec, req, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	GetAppStatus(rec, httptest.NewRequest(http.MethodGet, "/api/app/status", nil), nil)
	assert.JSONEq(t, `{"online":false}`, rec.Body.String())
}
