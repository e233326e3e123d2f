package repository

import (
	"context"

	"movie-search-bot/internal/model"
)

// CatalogRepository is the content lookup collaborator: an opaque search and
// fetch surface plus poster image download. All failures surface to the
// caller; no retries happen at this layer.
type CatalogRepository interface {
	// SearchMovies returns entries matching query, possibly empty.
	SearchMovies(ctx context.Context, query string) ([]model.SearchResult, error)
	// GetMovie resolves a search result ID into a full content record.
	GetMovie(ctx context.Context, id string) (model.Movie, error)
	// GetImage downloads the raw bytes behind an image URL.
	GetImage(ctx context.Context, url string) ([]byte, error)
}
