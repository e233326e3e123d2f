package usecase

import (
	"context"
	"fmt"

	"movie-search-bot/internal/movie"
)

// Search looks up catalog entries for the query. An empty result list is a
// normal outcome, not an error; the handler decides how to present it.
func (uc *useCase) Search(ctx context.Context, input movie.SearchInput) (movie.SearchOutput, error) {
	results, err := uc.catalog.SearchMovies(ctx, input.Query)
	if err != nil {
		uc.l.Errorf(ctx, "movie usecase: search %q failed: %v", input.Query, err)
		return movie.SearchOutput{}, fmt.Errorf("search failed: %w", err)
	}

	uc.l.Debugf(ctx, "movie usecase: search %q returned %d result(s)", input.Query, len(results))
	return movie.SearchOutput{Results: results}, nil
}
