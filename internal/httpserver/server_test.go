package httpserver_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"movie-search-bot/internal/httpserver"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) Info(ctx context.Context, args ...interface{})                   {}
func (nopLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (nopLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (nopLogger) Error(ctx context.Context, args ...interface{})                  {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (nopLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (nopLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (nopLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (nopLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type stubWebhook struct {
	called int
}

func (s *stubWebhook) HandleWebhook(c *gin.Context) {
	s.called++
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func newServer(t *testing.T, cfg httpserver.Config) *httpserver.HTTPServer {
	t.Helper()
	if cfg.Logger == nil {
		cfg.Logger = nopLogger{}
	}
	srv, err := httpserver.New(cfg.Logger, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return srv
}

func TestNewValidation(t *testing.T) {
	for _, tc := range []struct {
		name string
		cfg  httpserver.Config
	}{
		{"missing logger", httpserver.Config{Port: 8080, Mode: gin.TestMode, WebhookPath: "telegram"}},
		{"missing port", httpserver.Config{Logger: nopLogger{}, Mode: gin.TestMode, WebhookPath: "telegram"}},
		{"missing mode", httpserver.Config{Logger: nopLogger{}, Port: 8080, WebhookPath: "telegram"}},
		{"missing webhook path", httpserver.Config{Logger: nopLogger{}, Port: 8080, Mode: gin.TestMode}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := httpserver.New(tc.cfg.Logger, tc.cfg); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestRoutes(t *testing.T) {
	t.Run("liveness probe returns fixed text", func(t *testing.T) {
		srv := newServer(t, httpserver.Config{
			Port: 8080, Mode: gin.TestMode, WebhookPath: "telegram",
		})

		w := httptest.NewRecorder()
		srv.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != httpserver.LivenessBody {
			t.Errorf("unexpected liveness body: %q", w.Body.String())
		}
	})

	t.Run("health returns service identity", func(t *testing.T) {
		srv := newServer(t, httpserver.Config{
			Port: 8080, Mode: gin.TestMode, WebhookPath: "telegram", Environment: "test",
		})

		w := httptest.NewRecorder()
		srv.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), httpserver.ServiceName) {
			t.Errorf("expected service name in body, got %s", w.Body.String())
		}
	})

	t.Run("webhook route uses the configured path segment", func(t *testing.T) {
		wh := &stubWebhook{}
		srv := newServer(t, httpserver.Config{
			Port: 8080, Mode: gin.TestMode, WebhookPath: "s3cret", TelegramHandler: wh,
		})

		w := httptest.NewRecorder()
		srv.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/webhook/s3cret", strings.NewReader("{}")))
		if w.Code != http.StatusOK || wh.called != 1 {
			t.Fatalf("expected webhook hit, got code %d calls %d", w.Code, wh.called)
		}

		w = httptest.NewRecorder()
		srv.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/webhook/other", strings.NewReader("{}")))
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404 off the secret path, got %d", w.Code)
		}
	})
}
