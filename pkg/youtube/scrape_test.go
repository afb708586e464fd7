package youtube

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

const watchPageHTML = `<!DOCTYPE html>
<html><head>
<meta property="og:title" content="João Silva - Podpah #495">
<meta property="og:description" content="Episódio completo">
</head><body></body></html>`

func TestScrapeVideo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("v") != "vid-495" {
			t.Errorf("Unexpected video id %q", r.URL.Query().Get("v"))
		}
		fmt.Fprint(w, watchPageHTML)
	}))
	defer server.Close()

	client := NewClientWithBaseURLs("test-key", "http://unused", server.URL+"/watch")

	video, err := client.ScrapeVideo(context.Background(), "vid-495")
	if err != nil {
		t.Fatalf("ScrapeVideo failed: %v", err)
	}
	if video.Title != "João Silva - Podpah #495" {
		t.Errorf("Unexpected title %q", video.Title)
	}
	if video.Description != "Episódio completo" {
		t.Errorf("Unexpected description %q", video.Description)
	}
	if video.ViewCount != "0" || video.LikeCount != "0" || video.CommentCount != "0" {
		t.Errorf("Scraped counters should default to 0, got %+v", video)
	}
}

func TestScrapeVideoNoTitle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><head></head><body>nothing here</body></html>`)
	}))
	defer server.Close()

	client := NewClientWithBaseURLs("test-key", "http://unused", server.URL+"/watch")

	if _, err := client.ScrapeVideo(context.Background(), "vid-gone"); err == nil {
		t.Error("Expected error for page without og:title, got nil")
	}
}

func TestScrapeVideoErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClientWithBaseURLs("test-key", "http://unused", server.URL+"/watch")

	if _, err := client.ScrapeVideo(context.Background(), "vid-404"); err == nil {
		t.Error("Expected error for 404 watch page, got nil")
	}
}
