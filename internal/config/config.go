package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	TicketPrice int64          `mapstructure:"ticket_price"`
	Currency    CurrencyConfig `mapstructure:"currency"`
	Output      OutputConfig   `mapstructure:"output"`
	Server      ServerConfig   `mapstructure:"server"`
	LogLevel    string         `mapstructure:"log_level"`
}

// CurrencyConfig controls how prize amounts are displayed
type CurrencyConfig struct {
	Locale string `mapstructure:"locale"`
	Suffix string `mapstructure:"suffix"`
}

// OutputConfig controls the CLI report
type OutputConfig struct {
	Format string `mapstructure:"format"`
	Pretty bool   `mapstructure:"pretty"`
}

// ServerConfig holds HTTP API configuration
type ServerConfig struct {
	Port string `mapstructure:"port"`
}

var ErrInvalidTicketPrice = errors.New("ticket_price must be positive")

// Load reads config.yaml from the given paths (or . and ./config) and applies
// LOTTO_* environment overrides on top of the defaults
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{".", "./config"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix("LOTTO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine, defaults and env still apply
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if cfg.TicketPrice <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTicketPrice, cfg.TicketPrice)
	}

	return &cfg, nil
}

// TicketPriceDecimal returns the ticket price as a decimal amount
func (c *Config) TicketPriceDecimal() decimal.Decimal {
	return decimal.NewFromInt(c.TicketPrice)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ticket_price", 1000)
	v.SetDefault("currency.locale", "ko")
	v.SetDefault("currency.suffix", "원")
	v.SetDefault("output.format", "text")
	v.SetDefault("output.pretty", true)
	v.SetDefault("server.port", "8080")
	v.SetDefault("log_level", "info")
}
