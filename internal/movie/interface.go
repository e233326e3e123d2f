package movie

import "context"

// UseCase is the movie domain surface consumed by the Telegram delivery
// handlers.
type UseCase interface {
	// Search looks up catalog entries matching a free-text query.
	Search(ctx context.Context, input SearchInput) (SearchOutput, error)
	// Resolve turns a selection token into presentable content: title, poster
	// bytes and link messages pre-grouped under the platform message ceiling.
	Resolve(ctx context.Context, input ResolveInput) (ResolveOutput, error)
}
