// Package config loads runtime settings from the environment via Viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds every setting the storefront reads at startup.
type Config struct {
	AppPort          string        `mapstructure:"APP_PORT" validate:"required"`
	DatabaseDriver   string        `mapstructure:"DATABASE_DRIVER" validate:"oneof=memory sqlite postgres"`
	DatabaseDSN      string        `mapstructure:"DATABASE_DSN" validate:"required_unless=DatabaseDriver memory"`
	RabbitMQURL      string        `mapstructure:"RABBITMQ_URL" validate:"omitempty,url"`
	LogLevel         string        `mapstructure:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	ProductsPerPage  int           `mapstructure:"PRODUCTS_PER_PAGE" validate:"gte=1,lte=100"`
	BlogPostsPerPage int           `mapstructure:"BLOG_POSTS_PER_PAGE" validate:"gte=1,lte=100"`
	HeroAutoplay     time.Duration `mapstructure:"HERO_AUTOPLAY" validate:"gt=0"`
	SimulatedLatency time.Duration `mapstructure:"SIMULATED_LATENCY" validate:"gte=0"`
	BrowseSessionTTL time.Duration `mapstructure:"BROWSE_SESSION_TTL" validate:"gt=0"`
}

var keys = map[string]interface{}{
	"APP_PORT":            ":8080",
	"DATABASE_DRIVER":     "sqlite",
	"DATABASE_DSN":        "file:mrfixit?mode=memory&cache=shared",
	"RABBITMQ_URL":        "",
	"LOG_LEVEL":           "info",
	"PRODUCTS_PER_PAGE":   8,
	"BLOG_POSTS_PER_PAGE": 6,
	"HERO_AUTOPLAY":       "5s",
	"SIMULATED_LATENCY":   "0s",
	"BROWSE_SESSION_TTL":  "30m",
}

// Load reads configuration from v, falling back to defaults for anything
// unset. Pass nil to read from the process environment.
func Load(v *viper.Viper) (*Config, error) {
	if v == nil {
		v = viper.New()
	}
	for key, def := range keys {
		v.SetDefault(key, def)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	cfg.DatabaseDriver = strings.ToLower(strings.TrimSpace(cfg.DatabaseDriver))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}
