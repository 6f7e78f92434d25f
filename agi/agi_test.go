package agi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveHTML(html string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(html))
	}))
}

func TestCompose_UsesOpenGraphTags(t *testing.T) {
	srv := serveHTML(`<html><head>
		<meta property="og:title" content="Midnight Jazz Session">
		<meta property="og:description" content="Live from the Blue Room.">
	</head><body></body></html>`)
	defer srv.Close()

	got, err := Compose(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, got, "Midnight Jazz Session")
	assert.Contains(t, got, "Live from the Blue Room.")
}

func TestCompose_FallsBackToTitleTag(t *testing.T) {
	srv := serveHTML(`<html><head><title>Acoustic Set</title></head><body></body></html>`)
	defer srv.Close()

	got, err := Compose(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "Acoustic Set."))
}

func TestCompose_EmptyPageUsesTemplate(t *testing.T) {
	srv := serveHTML(`<html><head></head><body></body></html>`)
	defer srv.Close()

	got, err := Compose(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, fallbackTemplates, got)
}

func TestCompose_NonOKStatusFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := Compose(context.Background(), srv.URL)
	assert.Error(t, err)
}

func TestGenerateDescription_RequiresURL(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/agi/describe", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	GenerateDescription(rec, req, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
