package middleware

import (
	pkgLog "movie-search-bot/pkg/log"
)

// Middleware bundles the gin middlewares used by the HTTP server.
type Middleware struct {
	l pkgLog.Logger
}

// New creates the middleware bundle.
func New(l pkgLog.Logger) Middleware {
	return Middleware{l: l}
}
