package config

import (
	"fmt"
	"strings"
	"time"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Log          Logger       `mapstructure:"logger"`
	API          API          `mapstructure:"api"`
	AlphaVantage AlphaVantage `mapstructure:"alphavantage"`
	Cache        Cache        `mapstructure:"cache"`
	Scanner      Scanner      `mapstructure:"scanner"`
}

type Logger struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

type API struct {
	Port int `mapstructure:"port"`
}

type AlphaVantage struct {
	BaseURL          string        `mapstructure:"base_url"`
	APIKey           string        `mapstructure:"api_key" validate:"required"`
	Timeout          time.Duration `mapstructure:"timeout"`
	MaxRequestPerMin int           `mapstructure:"max_request_per_min" validate:"gt=0"`
}

type Cache struct {
	ScanTTL         time.Duration `mapstructure:"scan_ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

type Scanner struct {
	RefreshCron string `mapstructure:"refresh_cron"`
}

func Load() (*Config, error) {
	// Optional .env for local development, real deployments set env vars directly.
	_ = godotenv.Load()

	viper.SetConfigType("yaml")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("api.port", 8080)
	viper.SetDefault("alphavantage.base_url", "https://www.alphavantage.co")
	// Registers the key so AutomaticEnv resolves ALPHAVANTAGE_API_KEY even
	// without a config file; the validator still rejects an empty key.
	viper.SetDefault("alphavantage.api_key", "")
	viper.SetDefault("alphavantage.timeout", 30*time.Second)
	viper.SetDefault("alphavantage.max_request_per_min", 5)
	viper.SetDefault("cache.scan_ttl", 5*time.Minute)
	viper.SetDefault("cache.cleanup_interval", 10*time.Minute)
	viper.SetDefault("scanner.refresh_cron", "")

	if err := viper.ReadInConfig(); err != nil {
		fmt.Println("No config file loaded:", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := goValidator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
