// Package catalog is the HTTP client for the content lookup service.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"movie-search-bot/internal/model"
	"movie-search-bot/internal/movie/repository"
)

// Client is the HTTP wrapper for the catalog REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new catalog HTTP client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// SearchMovies queries the catalog via GET /api/search?q=<query>.
func (c *Client) SearchMovies(ctx context.Context, query string) ([]model.SearchResult, error) {
	u := fmt.Sprintf("%s/api/search?q=%s", c.baseURL, url.QueryEscape(query))

	var body searchResponse
	if err := c.getJSON(ctx, u, &body); err != nil {
		return nil, fmt.Errorf("catalog search failed: %w", err)
	}

	results := make([]model.SearchResult, 0, len(body.Results))
	for _, e := range body.Results {
		results = append(results, model.SearchResult{ID: e.ID, Title: e.Title})
	}
	return results, nil
}

// GetMovie fetches a single content record via GET /api/movies/{id}.
func (c *Client) GetMovie(ctx context.Context, id string) (model.Movie, error) {
	u := fmt.Sprintf("%s/api/movies/%s", c.baseURL, url.PathEscape(id))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return model.Movie{}, fmt.Errorf("failed to build get movie request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.Movie{}, fmt.Errorf("failed to call catalog get API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return model.Movie{}, fmt.Errorf("%w: %s", repository.ErrNotFound, id)
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return model.Movie{}, fmt.Errorf("catalog API get error %d: %s", resp.StatusCode, string(raw))
	}

	var body movieResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return model.Movie{}, fmt.Errorf("failed to decode catalog get response: %w", err)
	}

	return model.Movie{
		ID:       body.ID,
		Title:    body.Title,
		ImageURL: body.ImageURL,
		Links:    body.Links,
	}, nil
}

// GetImage downloads the raw bytes behind an image URL (poster download).
func (c *Client) GetImage(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build image request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image download error %d", resp.StatusCode)
	}

	img, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image body: %w", err)
	}
	return img, nil
}

func (c *Client) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call catalog API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("catalog API error %d: %s", resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode catalog response: %w", err)
	}
	return nil
}
