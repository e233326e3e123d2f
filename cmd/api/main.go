package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"movie-search-bot/config"
	_ "movie-search-bot/docs" // Swagger docs
	"movie-search-bot/internal/httpserver"
	tgDelivery "movie-search-bot/internal/movie/delivery/telegram"
	"movie-search-bot/internal/movie/repository"
	"movie-search-bot/internal/movie/repository/catalog"
	"movie-search-bot/internal/movie/usecase"
	"movie-search-bot/pkg/log"
	"movie-search-bot/pkg/telegram"
)

// @title       Movie Search Bot API
// @description Telegram webhook service for movie search and download links.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Movie Search Bot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Catalog URL: %s", cfg.Catalog.BaseURL)

	// 3. Movie domain
	telegramBot := telegram.NewBot(cfg.Telegram.BotToken)

	catalogClient := catalog.NewClient(cfg.Catalog.BaseURL)
	catalogRepo := repository.NewCached(catalogClient, cfg.Catalog.CacheSize, cfg.Catalog.CacheTTL)

	movieUC := usecase.New(logger, catalogRepo)

	telegramHandler := tgDelivery.New(logger, movieUC, telegramBot, cfg.Dispatch.HandlerTimeout)

	// Register webhook: explicit public URL wins, otherwise try the local
	// ngrok agent so development setups self-register.
	publicURL := cfg.Telegram.PublicURL
	if publicURL == "" {
		ngrokURL, ngrokErr := detectNgrokURL(ctx, "http://ngrok:4040")
		if ngrokErr != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
		} else {
			publicURL = ngrokURL
			logger.Infof(ctx, "Auto-detected ngrok URL: %s", publicURL)
		}
	}

	if publicURL != "" {
		webhookURL := publicURL + "/webhook/" + cfg.Telegram.WebhookPath
		if whErr := telegramBot.SetWebhook(ctx, webhookURL); whErr != nil {
			logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
		} else {
			logger.Infof(ctx, "✅ Telegram webhook registered at %s", webhookURL)
		}
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		WebhookPath:     cfg.Telegram.WebhookPath,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
