package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"movie-search-bot/internal/model"
	"movie-search-bot/internal/movie"
	"movie-search-bot/internal/reply"
)

const linksHeader = "Direct Download Links:"

// Resolve fetches the selected record, downloads its poster and formats the
// link text into ordered messages, each within the platform ceiling.
func (uc *useCase) Resolve(ctx context.Context, input movie.ResolveInput) (movie.ResolveOutput, error) {
	m, err := uc.catalog.GetMovie(ctx, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "movie usecase: resolve %q failed: %v", input.ID, err)
		return movie.ResolveOutput{}, fmt.Errorf("resolve failed: %w", err)
	}

	poster, err := uc.catalog.GetImage(ctx, m.ImageURL)
	if err != nil {
		uc.l.Errorf(ctx, "movie usecase: poster download for %q failed: %v", input.ID, err)
		return movie.ResolveOutput{}, fmt.Errorf("poster download failed: %w", err)
	}

	return movie.ResolveOutput{
		Title:        m.Title,
		Poster:       poster,
		LinkMessages: FormatLinks(m, reply.MaxMessageLen),
	}, nil
}

// FormatLinks renders the movie's labeled links as one line block per link and
// groups the blocks into messages of at most limit units, preserving block
// boundaries and order. Labels are sorted: the wire format is a JSON object,
// so arrival order is not meaningful.
func FormatLinks(m model.Movie, limit int) []string {
	labels := make([]string, 0, len(m.Links))
	for label := range m.Links {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	lines := make([]string, 0, len(labels)+1)
	lines = append(lines, linksHeader+"\n")
	for _, label := range labels {
		lines = append(lines, fmt.Sprintf("🎬%s\n%s\n", label, m.Links[label]))
	}

	return GroupLines(lines, limit)
}

// GroupLines packs lines into messages of at most limit units each, keeping
// line order and never splitting a line across messages unless a single line
// alone exceeds the limit.
func GroupLines(lines []string, limit int) []string {
	var messages []string
	var b strings.Builder

	flush := func() {
		if b.Len() > 0 {
			messages = append(messages, b.String())
			b.Reset()
		}
	}

	for _, line := range lines {
		if len(line) > limit {
			// Oversized single line: flush and let it go out alone, the
			// sender's hard chunking will split it.
			flush()
			messages = append(messages, line)
			continue
		}
		if b.Len()+len(line)+1 > limit && b.Len() > 0 {
			flush()
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(line)
	}
	flush()

	return messages
}
