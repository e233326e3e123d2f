package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"movie-search-bot/internal/middleware"
)

func (srv *HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv *HTTPServer) registerMiddlewares() {
	// Recovery is the outermost failure boundary: whatever escapes the
	// dispatcher still produces a terminated response.
	srv.gin.Use(gin.Recovery())

	mw := middleware.New(srv.l)
	srv.gin.Use(mw.RequestID())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/", srv.liveCheck)
	srv.gin.GET("/health", srv.healthCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	if srv.telegramHandler != nil {
		route := fmt.Sprintf("/webhook/%s", srv.webhookPath)
		srv.gin.POST(route, srv.telegramHandler.HandleWebhook)
		srv.l.Infof(ctx, "Telegram webhook route registered at POST %s", route)
	} else {
		srv.l.Warnf(ctx, "Telegram handler not configured, skipping webhook route")
	}
}
