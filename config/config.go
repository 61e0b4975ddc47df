package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"pricetable/internal/market"

	"github.com/spf13/viper"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Coinbase CoinbaseConfig `mapstructure:"coinbase"`
	Binance  BinanceConfig  `mapstructure:"binance"`
	Log      LogConfig      `mapstructure:"log"`
}

// CoinbaseConfig describes the streaming ticker source.
type CoinbaseConfig struct {
	Name     string   `mapstructure:"name"`     // exchange name in the output, e.g. "Coinbase"
	WS       WSConfig `mapstructure:"ws"`
	Products []string `mapstructure:"products"` // product ids to subscribe, e.g. "BTC-GBP"
}

// BinanceConfig describes the snapshot price source.
type BinanceConfig struct {
	Name  string             `mapstructure:"name"` // exchange name in the output, e.g. "Binance"
	REST  RESTConfig         `mapstructure:"rest"`
	Remap market.SymbolRemap `mapstructure:"remap"` // source symbol -> output symbol
}

type RESTConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Path    string        `mapstructure:"path"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type WSConfig struct {
	URL              string        `mapstructure:"url"`
	HandshakeTimeout time.Duration `mapstructure:"handshake_timeout"` // opening handshake only
}

// Options defines the logger configuration options.
type LogConfig struct {
	Level       string `mapstructure:"level"`       // log level: "debug", "info", "warn", "error"
	Format      string `mapstructure:"format"`      // log format: "json" or "console"
	OutputFile  string `mapstructure:"output_file"` // file path to store logs (optional)
	Environment string `mapstructure:"environment"` // environment: "dev" or "prod"
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("coinbase.name", "Coinbase")
	v.SetDefault("coinbase.ws.url", "wss://ws-feed.exchange.coinbase.com")
	v.SetDefault("coinbase.ws.handshake_timeout", 10*time.Second)
	v.SetDefault("coinbase.products", []string{"BTC-GBP", "ETH-GBP", "BTC-USD", "ETH-USD", "ETH-BTC"})

	v.SetDefault("binance.name", "Binance")
	v.SetDefault("binance.rest.base_url", "https://api.binance.com")
	v.SetDefault("binance.rest.path", "/api/v3/ticker/price")
	v.SetDefault("binance.rest.timeout", 10*time.Second)
	v.SetDefault("binance.remap", []map[string]string{
		{"source": "ADABTC", "target": "ADA-BTC"},
		{"source": "DOTBTC", "target": "DOT-BTC"},
		{"source": "ETHBTC", "target": "ETH-BTC"},
		{"source": "BNBBTC", "target": "BNB-BTC"},
	})

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.environment", "prod")
	v.SetDefault("log.output_file", "")
}

// Load loads application configuration using Viper.
// It reads config.yaml when one is found and falls back to built-in defaults.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config") // config.yaml
	v.SetConfigType("yaml")

	if ex, err := os.Executable(); err == nil {
		v.AddConfigPath(filepath.Join(filepath.Dir(ex), "../config"))
	}
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return decode(v)
}

// LoadFile loads configuration from an explicit file path on top of the defaults.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the fields every run depends on.
func (cfg *Config) Validate() error {
	switch {
	case cfg.Coinbase.Name == "" || cfg.Binance.Name == "":
		return fmt.Errorf("%w: exchange names must be set", ErrInvalidConfig)
	case cfg.Coinbase.WS.URL == "":
		return fmt.Errorf("%w: coinbase.ws.url is empty", ErrInvalidConfig)
	case len(cfg.Coinbase.Products) == 0:
		return fmt.Errorf("%w: coinbase.products is empty", ErrInvalidConfig)
	case cfg.Binance.REST.BaseURL == "":
		return fmt.Errorf("%w: binance.rest.base_url is empty", ErrInvalidConfig)
	}
	return nil
}
