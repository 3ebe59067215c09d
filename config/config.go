package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config holds the application's configuration
type Config struct {
	WebPort          int           `mapstructure:"WEB_PORT"`
	LogLevel         string        `mapstructure:"LOG_LEVEL"`
	StaticDir        string        `mapstructure:"STATIC_DIR"`
	SourceTimeout    time.Duration `mapstructure:"SOURCE_TIMEOUT_MS"`
	RaceDeadline     time.Duration `mapstructure:"RACE_DEADLINE_MS"`
	ReplyCharLimit   int           `mapstructure:"REPLY_CHAR_LIMIT"`
	PrimaryKeyword   string        `mapstructure:"PRIMARY_KEYWORD"`
	DomainKeywords   []string      `mapstructure:"DOMAIN_KEYWORDS"`
	RefusalMessages  []string      `mapstructure:"REFUSAL_MESSAGES"`
	FallbackMessage  string        `mapstructure:"FALLBACK_MESSAGE"`
	DuckDuckGoURL    string        `mapstructure:"DUCKDUCKGO_URL"`
	WikipediaAPIURL  string        `mapstructure:"WIKIPEDIA_API_URL"`
	WikipediaRESTURL string        `mapstructure:"WIKIPEDIA_REST_URL"`
	CORSAllowOrigins []string      `mapstructure:"CORS_ALLOW_ORIGINS"`
	RateLimitPerMin  int           `mapstructure:"RATE_LIMIT_REQUESTS_PER_MIN"`
	RateLimitBurst   int           `mapstructure:"RATE_LIMIT_BURST_SIZE"`
}

func Load(logger *zap.Logger) *Config {
	var config Config
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")        // For running locally
	viper.AddConfigPath("../")      // For running from docker subdir
	viper.AddConfigPath("./config") // Common config folder
	viper.AutomaticEnv()

	// Set default values
	viper.SetDefault("WEB_PORT", 8080)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("STATIC_DIR", "./web/static")
	// Each source call must finish well inside the race deadline, and the
	// race deadline must leave headroom inside the ~5s upstream webhook limit.
	viper.SetDefault("SOURCE_TIMEOUT_MS", 1500)
	viper.SetDefault("RACE_DEADLINE_MS", 3200)
	viper.SetDefault("REPLY_CHAR_LIMIT", 240)
	viper.SetDefault("PRIMARY_KEYWORD", "otter")
	viper.SetDefault("DOMAIN_KEYWORDS", []string{"otter", "otters", "sea otter"})
	viper.SetDefault("REFUSAL_MESSAGES", []string{
		"I'm an otter specialist, so that one is outside my depth. Ask me anything about otters!",
		"That's a bit beyond my whiskers - I only know about otters and their world.",
		"Sorry, I can only help with otter questions. Try asking what otters eat, or where they live!",
	})
	viper.SetDefault("FALLBACK_MESSAGE", "I couldn't find a good answer to that right now. Could you try rephrasing your otter question?")
	viper.SetDefault("DUCKDUCKGO_URL", "https://api.duckduckgo.com/")
	viper.SetDefault("WIKIPEDIA_API_URL", "https://en.wikipedia.org/w/api.php")
	viper.SetDefault("WIKIPEDIA_REST_URL", "https://en.wikipedia.org/api/rest_v1/page/summary")
	viper.SetDefault("CORS_ALLOW_ORIGINS", []string{"*"})
	viper.SetDefault("RATE_LIMIT_REQUESTS_PER_MIN", 30)
	viper.SetDefault("RATE_LIMIT_BURST_SIZE", 5)

	if err := viper.ReadInConfig(); err != nil {
		if logger != nil {
			logger.Warn("Could not read config file, using defaults/env vars", zap.Error(err))
		}
	}

	if err := viper.Unmarshal(&config); err != nil {
		// Config unmarshaling is critical - fail fast during bootstrap
		if logger != nil {
			logger.Fatal("Unable to decode config into struct", zap.Error(err))
		} else {
			// Fallback if logger not available (should not happen in practice)
			fmt.Fprintf(os.Stderr, "FATAL: Unable to decode config into struct: %v\n", err)
			os.Exit(1)
		}
	}

	// Drop blank entries that can sneak in through env-var splitting.
	config.DomainKeywords = cleanList(config.DomainKeywords)
	config.RefusalMessages = cleanList(config.RefusalMessages)
	config.CORSAllowOrigins = cleanList(config.CORSAllowOrigins)

	// Convert milliseconds to proper time.Duration
	config.SourceTimeout = config.SourceTimeout * time.Millisecond
	config.RaceDeadline = config.RaceDeadline * time.Millisecond

	return &config
}

func cleanList(values []string) []string {
	cleaned := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			cleaned = append(cleaned, v)
		}
	}
	return cleaned
}
