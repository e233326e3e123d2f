package movie

import "movie-search-bot/internal/model"

// SearchInput is the free-text query from a chat message.
type SearchInput struct {
	Query string
}

// SearchOutput carries the selectable results, possibly empty.
type SearchOutput struct {
	Results []model.SearchResult
}

// ResolveInput is the selection token from a callback payload.
type ResolveInput struct {
	ID string
}

// ResolveOutput is everything the select handler sends: the caption title,
// the downloaded poster, and the formatted link text split into bodies that
// each fit a single platform message.
type ResolveOutput struct {
	Title        string
	Poster       []byte
	LinkMessages []string
}
