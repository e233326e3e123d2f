package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
)

// Run maps all routes and serves until the listener fails or the process is
// stopped.
func (srv *HTTPServer) Run() error {
	srv.mapOnce.Do(srv.mapHandlers)

	addr := fmt.Sprintf(":%d", srv.port)
	srv.l.Infof(context.Background(), "HTTP server listening on %s (%s mode)", addr, srv.mode)

	if err := srv.gin.Run(addr); err != nil {
		return fmt.Errorf("http server stopped: %w", err)
	}
	return nil
}

// Engine returns the underlying gin engine with all routes mapped; used by
// tests to drive requests without a network listener.
func (srv *HTTPServer) Engine() *gin.Engine {
	srv.mapOnce.Do(srv.mapHandlers)
	return srv.gin
}
