package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port               string
	IsProduction       bool
	LogLevel           string
	CORSAllowedOrigins []string
	RateLimit          string // ulule limiter format, e.g. "120-M"; empty disables limiting
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("RATE_LIMIT", "120-M")

	// Environment variables override defaults and .env values.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.LogLevel = viper.GetString("LOG_LEVEL")
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
		log.Printf("Warning: LOG_LEVEL not set. Defaulting to %s.\n", cfg.LogLevel)
	}

	origins := viper.GetString("CORS_ALLOWED_ORIGINS")
	if origins == "" {
		origins = "*"
		log.Println("Warning: CORS_ALLOWED_ORIGINS not set. Allowing all origins.")
	}
	for _, origin := range strings.Split(origins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, trimmed)
		}
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
