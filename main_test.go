package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cloudstage/auth"
	"cloudstage/live"
	"cloudstage/ratelim"
	"cloudstage/seed"
	"cloudstage/storage"
	"cloudstage/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupRouter panics on conflicting route registrations, so building the
// full route table is itself part of the test.
func TestSetupRouter(t *testing.T) {
	require.NoError(t, store.Init(storage.NewMemory(), seed.Demo()))
	hub := live.NewHub()
	go hub.Run()
	t.Cleanup(hub.Stop)

	router := setupRouter(ratelim.NewRateLimiter(), hub)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/events", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	// Authenticated routes reject anonymous callers at the router level.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tickets/mine", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/events/pending", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

// A fresh deployment must be able to run the review workflow, which means
// the provisioned admin's token has to open the admin routes.
func TestAdminBootstrapOpensAdminRoutes(t *testing.T) {
	require.NoError(t, store.Init(storage.NewMemory(), seed.Demo()))
	t.Setenv("ADMIN_EMAIL", "ops@x.com")
	t.Setenv("ADMIN_PASSWORD", "letmein123")
	require.NoError(t, auth.EnsureAdmin())

	hub := live.NewHub()
	go hub.Run()
	t.Cleanup(hub.Stop)
	router := setupRouter(ratelim.NewRateLimiter(), hub)

	body := `{"email":"ops@x.com","password":"letmein123"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/events/pending", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Data.Token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
