// Package agi generates event descriptions from a stream URL. It scrapes
// the page's Open Graph tags and falls back to a canned template when the
// page gives nothing usable.
package agi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"cloudstage/utils"

	"github.com/PuerkitoBio/goquery"
	"github.com/julienschmidt/httprouter"
)

var httpClient = &http.Client{Timeout: 10 * time.Second}

var fallbackTemplates = []string{
	"Join us live for an unforgettable streamed performance. Grab your spot before the show starts!",
	"A one-night-only live stream you won't want to miss. Tickets are limited, the energy is not.",
	"Streaming straight to your screen: a live set packed with surprises. See you in the chat!",
}

type pageMeta struct {
	Title       string
	Description string
}

func fetchMeta(ctx context.Context, url string) (pageMeta, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return pageMeta{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")

	resp, err := httpClient.Do(req)
	if err != nil {
		return pageMeta{}, fmt.Errorf("failed to fetch stream URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return pageMeta{}, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, 2*1024*1024)) // 2MB limit
	if err != nil {
		return pageMeta{}, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var meta pageMeta
	if title, exists := doc.Find(`meta[property="og:title"]`).Attr("content"); exists {
		meta.Title = strings.TrimSpace(title)
	}
	if meta.Title == "" {
		meta.Title = strings.TrimSpace(doc.Find("title").Text())
	}
	if desc, exists := doc.Find(`meta[property="og:description"]`).Attr("content"); exists {
		meta.Description = strings.TrimSpace(desc)
	}
	if meta.Description == "" {
		if desc, exists := doc.Find(`meta[name="description"]`).Attr("content"); exists {
			meta.Description = strings.TrimSpace(desc)
		}
	}
	return meta, nil
}

// Compose builds a description for the given stream URL.
func Compose(ctx context.Context, url string) (string, error) {
	meta, err := fetchMeta(ctx, url)
	if err != nil {
		return "", err
	}

	switch {
	case meta.Title != "" && meta.Description != "":
		return fmt.Sprintf("%s — %s", meta.Title, meta.Description), nil
	case meta.Title != "":
		return fmt.Sprintf("%s. %s", meta.Title, fallbackTemplates[rand.Intn(len(fallbackTemplates))]), nil
	default:
		return fallbackTemplates[rand.Intn(len(fallbackTemplates))], nil
	}
}

// GenerateDescription handles POST /api/agi/describe. Callers keep their
// existing text on failure; the endpoint never invents a partial result.
func GenerateDescription(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		StreamURL string `json:"stream_url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || strings.TrimSpace(body.StreamURL) == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Stream URL is required")
		return
	}

	description, err := Compose(r.Context(), body.StreamURL)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadGateway, "Could not generate a description")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"description": description})
}
