package telegram

import (
	"context"
	"fmt"

	"movie-search-bot/internal/dispatch"
	"movie-search-bot/internal/movie"
	"movie-search-bot/internal/reply"
	"movie-search-bot/internal/update"
)

// User-facing reply text.
const (
	welcomeText  = "Hello! Welcome to Movie Search Bot.\n🔥 Find your favourite movies, series and TV shows and 🍿 enjoy."
	promptText   = "👇 Enter a keyword below 👇"
	progressText = "Processing..."
	resultsText  = "Results"
	noResultText = "Sorry 🙏, no results found!\nPlease try another keyword."
)

// startHandler answers the /start command with a welcome and a prompt.
// Both sends are required: a failure on either fails the invocation.
type startHandler struct{}

// NewStartHandler creates the /start command handler.
func NewStartHandler() dispatch.Handler { return &startHandler{} }

func (h *startHandler) Name() string { return "start" }

func (h *startHandler) Match(u update.Update) bool {
	return u.Kind == update.KindText && dispatch.CommandName(u.Text) == "start"
}

func (h *startHandler) Handle(ctx context.Context, u update.Update, s reply.Sender) error {
	if err := s.SendText(ctx, welcomeText); err != nil {
		return fmt.Errorf("welcome send failed: %w", err)
	}
	if err := s.SendText(ctx, promptText); err != nil {
		return fmt.Errorf("prompt send failed: %w", err)
	}
	return nil
}

// searchHandler is the plain-text catch-all: it treats the message text as a
// search query and offers the results as selectable buttons.
type searchHandler struct {
	uc movie.UseCase
}

// NewSearchHandler creates the plain-text search handler.
func NewSearchHandler(uc movie.UseCase) dispatch.Handler { return &searchHandler{uc: uc} }

func (h *searchHandler) Name() string { return "search" }

func (h *searchHandler) Match(u update.Update) bool {
	return u.Kind == update.KindText && !dispatch.IsCommand(u.Text)
}

func (h *searchHandler) Handle(ctx context.Context, u update.Update, s reply.Sender) error {
	if err := s.SendText(ctx, progressText); err != nil {
		return fmt.Errorf("progress send failed: %w", err)
	}

	out, err := h.uc.Search(ctx, movie.SearchInput{Query: u.Text})
	if err != nil {
		return err
	}

	if len(out.Results) == 0 {
		return s.SendText(ctx, noResultText)
	}

	buttons := make([]reply.Button, 0, len(out.Results))
	for _, r := range out.Results {
		buttons = append(buttons, reply.Button{Label: r.Title, Data: r.ID})
	}
	return s.SendButtons(ctx, resultsText, buttons)
}

// selectHandler is the callback catch-all: the callback payload carries the
// selection token of a previously offered result.
type selectHandler struct {
	uc movie.UseCase
}

// NewSelectHandler creates the callback selection handler.
func NewSelectHandler(uc movie.UseCase) dispatch.Handler { return &selectHandler{uc: uc} }

func (h *selectHandler) Name() string { return "select" }

func (h *selectHandler) Match(u update.Update) bool {
	return u.Kind == update.KindCallback
}

func (h *selectHandler) Handle(ctx context.Context, u update.Update, s reply.Sender) error {
	if u.Callback == nil || u.Callback.Data == "" {
		return fmt.Errorf("callback update without selection token")
	}

	out, err := h.uc.Resolve(ctx, movie.ResolveInput{ID: u.Callback.Data})
	if err != nil {
		return err
	}

	if err := s.SendPhoto(ctx, out.Poster, fmt.Sprintf("🎥 %s", out.Title)); err != nil {
		return fmt.Errorf("poster send failed: %w", err)
	}
	for _, msg := range out.LinkMessages {
		if err := s.SendText(ctx, msg); err != nil {
			return fmt.Errorf("links send failed: %w", err)
		}
	}
	return nil
}
