package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig
	HTTPServer  HTTPServerConfig
	Logger      LoggerConfig

	Telegram TelegramConfig
	Catalog  CatalogConfig
	Dispatch DispatchConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// TelegramConfig configures the bot and its webhook.
// BotToken is required: the service must not accept webhook traffic without
// it. PublicURL is optional and only enables webhook registration at startup.
type TelegramConfig struct {
	BotToken    string
	PublicURL   string
	WebhookPath string
}

// CatalogConfig points at the content lookup service and sizes its cache.
type CatalogConfig struct {
	BaseURL   string
	CacheSize int
	CacheTTL  time.Duration
}

// DispatchConfig bounds handler execution. The timeout must sit below the
// hosting platform's request deadline so every webhook gets a response.
type DispatchConfig struct {
	HandlerTimeout time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.PublicURL = viper.GetString("telegram.public_url")
	cfg.Telegram.WebhookPath = viper.GetString("telegram.webhook_path")
	if tok := viper.GetString("telegram_bot_token"); tok != "" {
		cfg.Telegram.BotToken = tok
	}
	if u := viper.GetString("public_url"); u != "" {
		cfg.Telegram.PublicURL = u
	}

	cfg.Catalog.BaseURL = viper.GetString("catalog.base_url")
	cfg.Catalog.CacheSize = viper.GetInt("catalog.cache_size")
	cfg.Catalog.CacheTTL = viper.GetDuration("catalog.cache_ttl")
	if u := viper.GetString("catalog_base_url"); u != "" {
		cfg.Catalog.BaseURL = u
	}

	cfg.Dispatch.HandlerTimeout = viper.GetDuration("dispatch.handler_timeout")

	// The bot token is the one hard requirement: without it every dispatch
	// would fail at send time, so refuse to start instead.
	if cfg.Telegram.BotToken == "" {
		return nil, fmt.Errorf("telegram.bot_token is required (set TELEGRAM_BOT_TOKEN)")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("telegram.webhook_path", "telegram")
	viper.SetDefault("catalog.cache_size", 256)
	viper.SetDefault("catalog.cache_ttl", "10m")
	viper.SetDefault("dispatch.handler_timeout", "25s")
}
