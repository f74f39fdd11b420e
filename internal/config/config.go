package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fjod/go_cart/console-shop/pkg/logger"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Orders  OrdersConfig  `yaml:"orders"`
	Cart    CartConfig    `yaml:"cart"`
	Catalog CatalogConfig `yaml:"catalog"`
	Logger  logger.Config `yaml:"logger"`
}

type OrdersConfig struct {
	LogPath  string `yaml:"log_path"`
	Capacity int    `yaml:"capacity"`
	FirstID  int    `yaml:"first_id"`
}

type CartConfig struct {
	Capacity int `yaml:"capacity"`
}

type CatalogConfig struct {
	// DBPath selects a SQLite catalog; empty uses the built-in products
	DBPath string `yaml:"db_path"`
}

func Default() *Config {
	return &Config{
		Orders: OrdersConfig{
			LogPath:  "orders.txt",
			Capacity: 100,
			FirstID:  1,
		},
		Cart: CartConfig{
			Capacity: 100,
		},
		Logger: logger.Config{
			Filename:   "shop.log",
			Level:      "info",
			Mode:       logger.ModeProduction,
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Load applies defaults, then the YAML file at path (if any), then environment
// variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	cfg.Orders.LogPath = getEnv("ORDER_LOG_PATH", cfg.Orders.LogPath)
	cfg.Catalog.DBPath = getEnv("CATALOG_DB_PATH", cfg.Catalog.DBPath)
	cfg.Logger.Level = getEnv("LOG_LEVEL", cfg.Logger.Level)
	cfg.Logger.Mode = getEnv("LOG_MODE", cfg.Logger.Mode)

	// LOG_FILE may be set to empty to turn diagnostics off
	if v, ok := os.LookupEnv("LOG_FILE"); ok {
		cfg.Logger.Filename = v
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"ORDER_CAPACITY", &cfg.Orders.Capacity},
		{"ORDER_FIRST_ID", &cfg.Orders.FirstID},
		{"CART_CAPACITY", &cfg.Cart.Capacity},
	}
	for _, e := range ints {
		v := os.Getenv(e.key)
		if v == "" {
			continue
		}
		n, err := parseDecimal(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, e.key, v, err)
		}
		*e.dst = n
	}
	return nil
}

// parseDecimal reads a base-10 integer. Leading zeros are ignored, so "010"
// is ten rather than octal eight.
func parseDecimal(v string) (int, error) {
	v = strings.TrimSpace(v)
	sign, digits := "", v
	if strings.HasPrefix(v, "-") {
		sign, digits = "-", v[1:]
	}
	if digits == "" || strings.Trim(digits, "0123456789") != "" {
		return 0, fmt.Errorf("%q is not a decimal integer", v)
	}
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		digits = "0"
	}
	return cast.ToIntE(sign + digits)
}

func (c *Config) Validate() error {
	if c.Orders.LogPath == "" {
		return fmt.Errorf("%w: orders.log_path is empty", ErrInvalidConfig)
	}
	if c.Orders.Capacity < 1 {
		return fmt.Errorf("%w: orders.capacity must be at least 1, got %d", ErrInvalidConfig, c.Orders.Capacity)
	}
	if c.Orders.FirstID < 1 {
		return fmt.Errorf("%w: orders.first_id must be at least 1, got %d", ErrInvalidConfig, c.Orders.FirstID)
	}
	if c.Cart.Capacity < 1 {
		return fmt.Errorf("%w: cart.capacity must be at least 1, got %d", ErrInvalidConfig, c.Cart.Capacity)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
