package telegram

import (
	"time"

	"github.com/gin-gonic/gin"

	"movie-search-bot/internal/dispatch"
	"movie-search-bot/internal/movie"
	"movie-search-bot/internal/reply"
	pkgLog "movie-search-bot/pkg/log"
	pkgTelegram "movie-search-bot/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l          pkgLog.Logger
	dispatcher *dispatch.Dispatcher
}

// New creates the Telegram delivery handler. The handler registry is built at
// most once, on first webhook, in the fixed resolution order: command handlers
// first, then the callback catch-all, then the plain-text catch-all.
func New(l pkgLog.Logger, uc movie.UseCase, bot *pkgTelegram.Bot, timeout time.Duration) Handler {
	registry := dispatch.NewLazy(func() *dispatch.Registry {
		return dispatch.NewRegistry(
			NewStartHandler(),
			NewSelectHandler(uc),
			NewSearchHandler(uc),
		)
	})

	senderFor := func(chatID int64) reply.Sender {
		return reply.NewChatSender(bot, chatID)
	}

	return &handler{
		l:          l,
		dispatcher: dispatch.NewDispatcher(l, registry, senderFor, timeout),
	}
}
