package telegram

import (
	"github.com/gin-gonic/gin"

	"movie-search-bot/internal/update"
	pkgResponse "movie-search-bot/pkg/response"
)

// HandleWebhook is the gin handler for incoming Telegram webhook updates.
//
// The pipeline runs synchronously: decode, dispatch, acknowledge. The hosting
// environment kills the process shortly after the response is written, so work
// must not outlive the request. Telegram treats any non-2xx (or absent)
// response as delivery failure and redelivers the update, which would
// duplicate replies; dispatch is therefore deadline-bounded and every failure
// is converted into a terminal JSON response here.
//
// @Summary     Telegram webhook
// @Description Receives one Telegram update and dispatches it to a command handler
// @Tags        Webhook
// @Accept      json
// @Produce     json
// @Success     200 {object} response.Resp "update processed"
// @Failure     500 {object} response.Resp "malformed update or handler failure"
// @Router      /webhook/telegram [post]
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	raw, err := c.GetRawData()
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to read body: %v", err)
		pkgResponse.Error(c, "unreadable request body")
		return
	}

	u, err := update.Decode(raw)
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to decode update: %v", err)
		pkgResponse.Error(c, "malformed update")
		return
	}

	res := h.dispatcher.Dispatch(ctx, u)
	if res.Failed() {
		// The cause is logged by the dispatcher; callers only get the kind.
		pkgResponse.Error(c, "handler failed")
		return
	}

	pkgResponse.OK(c, nil)
}
