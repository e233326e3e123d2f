package catalog

// searchResponse is the body of GET /api/search.
type searchResponse struct {
	Results []searchEntry `json:"results"`
}

type searchEntry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// movieResponse is the body of GET /api/movies/{id}.
type movieResponse struct {
	ID       string            `json:"id"`
	Title    string            `json:"title"`
	ImageURL string            `json:"image_url"`
	Links    map[string]string `json:"links"`
}
