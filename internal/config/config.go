package config

import (
	"fmt"
	"time"

	pkgconfig "github.com/Aashif-Raza/TrendNest/pkg/config"
)

// Config holds all runtime configuration for the storefront core.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Catalog page size for the product grid.
	ProductsPerPage int `env:"PRODUCTS_PER_PAGE" envDefault:"12"`

	// Notification auto-dismiss in milliseconds.
	NotificationTTLMs int `env:"NOTIFICATION_TTL_MS" envDefault:"4000"`

	// Search feedback delays in milliseconds.
	SearchScrollDelayMs int `env:"SEARCH_SCROLL_DELAY_MS" envDefault:"200"`
	SearchIndicatorMs   int `env:"SEARCH_INDICATOR_MS" envDefault:"1000"`

	// Simulated order settlement delay in milliseconds.
	OrderSettleMs int `env:"ORDER_SETTLE_MS" envDefault:"1600"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load storefront config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate rejects out-of-range values after parsing.
func (c *Config) validate() error {
	if c.ProductsPerPage < 1 {
		return fmt.Errorf("invalid products per page: %d", c.ProductsPerPage)
	}
	if c.NotificationTTLMs < 1 {
		return fmt.Errorf("invalid notification TTL: %d", c.NotificationTTLMs)
	}
	if c.SearchScrollDelayMs < 0 || c.SearchIndicatorMs < 0 {
		return fmt.Errorf("invalid search delay")
	}
	if c.OrderSettleMs < 0 {
		return fmt.Errorf("invalid order settle delay: %d", c.OrderSettleMs)
	}
	return nil
}

// NotificationTTL returns the notification auto-dismiss duration.
func (c *Config) NotificationTTL() time.Duration {
	return time.Duration(c.NotificationTTLMs) * time.Millisecond
}

// SearchScrollDelay returns the delayed scroll-into-view duration.
func (c *Config) SearchScrollDelay() time.Duration {
	return time.Duration(c.SearchScrollDelayMs) * time.Millisecond
}

// SearchIndicatorDelay returns how long the searching indicator stays on.
func (c *Config) SearchIndicatorDelay() time.Duration {
	return time.Duration(c.SearchIndicatorMs) * time.Millisecond
}

// OrderSettleDelay returns the simulated settlement duration.
func (c *Config) OrderSettleDelay() time.Duration {
	return time.Duration(c.OrderSettleMs) * time.Millisecond
}
