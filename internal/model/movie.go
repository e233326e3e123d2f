package model

// SearchResult is one selectable entry returned by the content catalog.
type SearchResult struct {
	ID    string
	Title string
}

// Movie is a resolved content record: a poster image URL and a set of
// labeled download links.
type Movie struct {
	ID       string
	Title    string
	ImageURL string
	Links    map[string]string
}
