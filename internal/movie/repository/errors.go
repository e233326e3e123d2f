package repository

import "errors"

// ErrNotFound reports a movie ID the catalog does not know.
var ErrNotFound = errors.New("movie not found")
