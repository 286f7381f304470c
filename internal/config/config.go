package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
	Auction AuctionConfig `mapstructure:"auction"`
	Expiry  ExpiryConfig  `mapstructure:"expiry"`
	Theme   ThemeConfig   `mapstructure:"theme"`
}

type AppConfig struct {
	Env string `mapstructure:"env"`
}

type ServerConfig struct {
	HTTPAddr        string        `mapstructure:"http_addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type AuctionConfig struct {
	// MinBidIncrement is enforced by the HTTP adapter only, in cents.
	MinBidIncrement    int64 `mapstructure:"min_bid_increment"`
	PriceHistoryPoints int   `mapstructure:"price_history_points"`
	Seed               bool  `mapstructure:"seed"`
}

type ExpiryConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"`
}

type ThemeConfig struct {
	Backend       string `mapstructure:"backend"`
	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db"`
}

// Load reads configuration from the YAML file at path and TOYX_* environment variables.
// An empty path means environment and defaults only.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("TOYX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("app.env", "dev")
	v.SetDefault("server.http_addr", ":8080")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("auction.min_bid_increment", 100)
	v.SetDefault("auction.price_history_points", 12)
	v.SetDefault("auction.seed", true)
	v.SetDefault("expiry.enabled", false)
	v.SetDefault("expiry.schedule", "@every 30s")
	v.SetDefault("theme.backend", "memory")
	v.SetDefault("theme.redis_addr", "localhost:6379")
	v.SetDefault("theme.redis_password", "")
	v.SetDefault("theme.redis_db", 0)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}

	// PORT wins over server.http_addr for platforms that only hand out a port
	if p := os.Getenv("PORT"); p != "" {
		cfg.Server.HTTPAddr = ":" + p
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Theme.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("config: unknown theme.backend %q", c.Theme.Backend)
	}
	if c.Auction.MinBidIncrement < 0 {
		return fmt.Errorf("config: auction.min_bid_increment must not be negative")
	}
	if c.Auction.PriceHistoryPoints <= 0 {
		return fmt.Errorf("config: auction.price_history_points must be positive")
	}
	if c.Expiry.Enabled && c.Expiry.Schedule == "" {
		return fmt.Errorf("config: expiry.schedule is required when expiry is enabled")
	}
	return nil
}
