package config

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	DatabaseURL      string
	HTTPAddress      string
	JWTSecret        string
	TokenTTL         time.Duration
	JWTIssuer        string
	JWTAudience      string
	AllowedOrigins   []string
	AllowCredentials bool
	GlobalRateLimit  int
	GlobalRateBurst  int
}

// Load reads configuration from an optional config.json and the
// environment. DATABASE_URL and JWT_SECRET are required, everything else
// has a default.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("json")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	keys := []string{
		"DATABASE_URL", "HTTP_ADDRESS", "JWT_SECRET", "TOKEN_TTL",
		"JWT_ISSUER", "JWT_AUDIENCE", "ALLOWED_ORIGINS", "ALLOW_CREDENTIALS",
		"GLOBAL_RATE_LIMIT", "GLOBAL_RATE_BURST",
	}
	for _, k := range keys {
		if err := viper.BindEnv(k); err != nil {
			return nil, err
		}
	}

	viper.SetDefault("HTTP_ADDRESS", ":8080")
	viper.SetDefault("TOKEN_TTL", "24h")
	viper.SetDefault("JWT_ISSUER", "my-second-project")
	viper.SetDefault("ALLOWED_ORIGINS", `["http://localhost:3009"]`)
	viper.SetDefault("GLOBAL_RATE_LIMIT", 100)
	viper.SetDefault("GLOBAL_RATE_BURST", 100)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file, %w", err)
		}
	}

	cfg := &Config{
		DatabaseURL:      viper.GetString("DATABASE_URL"),
		HTTPAddress:      viper.GetString("HTTP_ADDRESS"),
		JWTSecret:        viper.GetString("JWT_SECRET"),
		TokenTTL:         viper.GetDuration("TOKEN_TTL"),
		JWTIssuer:        viper.GetString("JWT_ISSUER"),
		JWTAudience:      viper.GetString("JWT_AUDIENCE"),
		AllowedOrigins:   parseOrigins(viper.GetString("ALLOWED_ORIGINS")),
		AllowCredentials: viper.GetBool("ALLOW_CREDENTIALS"),
		GlobalRateLimit:  viper.GetInt("GLOBAL_RATE_LIMIT"),
		GlobalRateBurst:  viper.GetInt("GLOBAL_RATE_BURST"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}
	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL must be positive")
	}

	return cfg, nil
}

// parseOrigins accepts either a JSON array (the form used in config.json)
// or a single origin string.
func parseOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	var origins []string
	if err := json.Unmarshal([]byte(raw), &origins); err == nil {
		return origins
	}
	return []string{raw}
}
