// Package dispatch routes a normalized update to at most one registered
// handler and contains every handler failure behind a Result.
package dispatch

import (
	"context"
	"strings"
	"sync"

	"movie-search-bot/internal/reply"
	"movie-search-bot/internal/update"
)

// Handler consumes one update and emits replies through the bound sender.
// Handlers must not retain the update or sender past their own invocation.
type Handler interface {
	// Name identifies the handler in logs and dispatch results.
	Name() string
	// Match reports whether this handler should receive the update.
	Match(u update.Update) bool
	// Handle processes the update. Returning an error marks the dispatch as
	// failed; it is never propagated past the dispatcher.
	Handle(ctx context.Context, u update.Update, s reply.Sender) error
}

// Registry is an ordered, immutable handler table. Resolution is
// first-match-wins over the registration order, so registration order is the
// tie-break rule: command handlers are registered ahead of the callback
// catch-all, which is registered ahead of the plain-text catch-all.
type Registry struct {
	handlers []Handler
}

// NewRegistry builds a registry from handlers in resolution order.
func NewRegistry(handlers ...Handler) *Registry {
	return &Registry{handlers: handlers}
}

// Resolve returns the first handler matching u, or nil when none matches.
// Ignored updates match no handler; neither does a command without a
// registered handler (command-marker text never falls through to the
// plain-text catch-all).
func (r *Registry) Resolve(u update.Update) Handler {
	if u.Kind == update.KindIgnored {
		return nil
	}
	for _, h := range r.handlers {
		if h.Match(u) {
			return h
		}
	}
	return nil
}

// IsCommand reports whether text carries the leading command marker.
func IsCommand(text string) bool {
	return strings.HasPrefix(text, "/")
}

// CommandName extracts the command name from text: the first token without the
// marker, with any @botname suffix stripped. Empty if text is not a command.
func CommandName(text string) string {
	if !IsCommand(text) {
		return ""
	}
	name := text[1:]
	if i := strings.IndexAny(name, " \t\n"); i >= 0 {
		name = name[:i]
	}
	if i := strings.Index(name, "@"); i >= 0 {
		name = name[:i]
	}
	return name
}

// Lazy guards one-time registry construction. Concurrent first callers all
// observe the same completed instance; the build function runs exactly once.
type Lazy struct {
	once  sync.Once
	build func() *Registry
	reg   *Registry
}

// NewLazy wraps a registry builder for single construction on first use.
func NewLazy(build func() *Registry) *Lazy {
	return &Lazy{build: build}
}

// Get returns the registry, constructing it on first call.
func (l *Lazy) Get() *Registry {
	l.once.Do(func() {
		l.reg = l.build()
	})
	return l.reg
}
