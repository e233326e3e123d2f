package repository

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"movie-search-bot/internal/model"
)

// Cached decorates a CatalogRepository with an expirable LRU over search and
// fetch results. The upstream catalog is slow and its answers change rarely;
// redelivered updates (at-least-once webhooks) hit the cache instead of the
// catalog. Images are not cached: they are large and fetched once per select.
type Cached struct {
	next     CatalogRepository
	searches *expirable.LRU[string, []model.SearchResult]
	movies   *expirable.LRU[string, model.Movie]
}

// NewCached wraps next with caches of the given size and TTL.
func NewCached(next CatalogRepository, size int, ttl time.Duration) *Cached {
	return &Cached{
		next:     next,
		searches: expirable.NewLRU[string, []model.SearchResult](size, nil, ttl),
		movies:   expirable.NewLRU[string, model.Movie](size, nil, ttl),
	}
}

func (c *Cached) SearchMovies(ctx context.Context, query string) ([]model.SearchResult, error) {
	if results, ok := c.searches.Get(query); ok {
		return results, nil
	}
	results, err := c.next.SearchMovies(ctx, query)
	if err != nil {
		return nil, err
	}
	c.searches.Add(query, results)
	return results, nil
}

func (c *Cached) GetMovie(ctx context.Context, id string) (model.Movie, error) {
	if m, ok := c.movies.Get(id); ok {
		return m, nil
	}
	m, err := c.next.GetMovie(ctx, id)
	if err != nil {
		return model.Movie{}, err
	}
	c.movies.Add(id, m)
	return m, nil
}

func (c *Cached) GetImage(ctx context.Context, url string) ([]byte, error) {
	return c.next.GetImage(ctx, url)
}
