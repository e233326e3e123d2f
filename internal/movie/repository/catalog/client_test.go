package catalog_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"movie-search-bot/internal/movie/repository"
	"movie-search-bot/internal/movie/repository/catalog"
)

func newCatalogServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/search", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("q") {
		case "inception":
			w.Write([]byte(`{"results": [{"id": "m1", "title": "Inception"}, {"id": "m2", "title": "Inception 2010"}]}`))
		case "boom":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.Write([]byte(`{"results": []}`))
		}
	})
	mux.HandleFunc("/api/movies/m1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"id": "m1",
			"title": "Inception",
			"image_url": "http://img.example/m1.jpg",
			"links": {"720p": "http://dl.example/m1-720", "1080p": "http://dl.example/m1-1080"}
		}`))
	})
	mux.HandleFunc("/api/movies/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("/poster.jpg", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte{0xff, 0xd8, 0xff, 0xe0})
	})

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func TestClient(t *testing.T) {
	ctx := context.Background()
	ts := newCatalogServer(t)
	client := catalog.NewClient(ts.URL)

	t.Run("search returns results", func(t *testing.T) {
		results, err := client.SearchMovies(ctx, "inception")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 2 || results[0].ID != "m1" || results[1].Title != "Inception 2010" {
			t.Errorf("unexpected results: %v", results)
		}
	})

	t.Run("search returns empty list", func(t *testing.T) {
		results, err := client.SearchMovies(ctx, "nothing here")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 0 {
			t.Errorf("expected empty results, got %v", results)
		}
	})

	t.Run("search surfaces server errors", func(t *testing.T) {
		if _, err := client.SearchMovies(ctx, "boom"); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("get movie", func(t *testing.T) {
		m, err := client.GetMovie(ctx, "m1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Title != "Inception" || m.ImageURL != "http://img.example/m1.jpg" {
			t.Errorf("unexpected movie: %+v", m)
		}
		if m.Links["720p"] != "http://dl.example/m1-720" {
			t.Errorf("unexpected links: %v", m.Links)
		}
	})

	t.Run("get movie not found", func(t *testing.T) {
		_, err := client.GetMovie(ctx, "missing")
		if !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("get image", func(t *testing.T) {
		img, err := client.GetImage(ctx, ts.URL+"/poster.jpg")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.Equal(img, []byte{0xff, 0xd8, 0xff, 0xe0}) {
			t.Errorf("unexpected image bytes: %v", img)
		}
	})
}
