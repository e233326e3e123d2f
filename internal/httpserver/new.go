package httpserver

import (
	"errors"
	"sync"

	"github.com/gin-gonic/gin"

	tgDelivery "movie-search-bot/internal/movie/delivery/telegram"
	"movie-search-bot/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	mapOnce     sync.Once
	l           log.Logger
	port        int
	mode        string
	environment string

	// Webhook path segment; kept secret-capable (the route may embed a
	// configured secret instead of a fixed name).
	webhookPath string

	telegramHandler tgDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	WebhookPath string

	TelegramHandler tgDelivery.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		webhookPath:     cfg.WebhookPath,
		telegramHandler: cfg.TelegramHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.webhookPath == "" {
		return errors.New("webhook path is required")
	}
	return nil
}
