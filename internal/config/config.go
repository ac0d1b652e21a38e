package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	yaml "gopkg.in/yaml.v2"

	"github.com/CaoDat1603/frontend-for-ev-battery-trading-platform-sub000/internal/models"
)

// Config holds everything the auction client needs to talk to the
// marketplace and apply platform policy.
type Config struct {
	API struct {
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"api"`
	Deposit struct {
		Floor float64 `yaml:"floor"`
		Rate  float64 `yaml:"rate"`
	} `yaml:"deposit"`
	Listing struct {
		PageSize    int `yaml:"page_size"`
		MaxBidScan  int `yaml:"max_bid_scan"`
		ProductScan int `yaml:"product_scan"`
	} `yaml:"listing"`
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
}

func defaults() *Config {
	cfg := &Config{}
	cfg.API.BaseURL = "http://localhost:8080"
	cfg.API.TimeoutSeconds = 30
	policy := models.DefaultDepositPolicy()
	cfg.Deposit.Floor = policy.Floor
	cfg.Deposit.Rate = policy.Rate
	cfg.Listing.PageSize = 10
	cfg.Listing.MaxBidScan = 1000
	cfg.Listing.ProductScan = 50
	cfg.Server.Port = 8080
	return cfg
}

// Load builds the configuration from, in increasing precedence: built-in
// defaults, the YAML file at path (skipped when path is empty or missing),
// a .env file in the working directory, and process environment variables.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(raw, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	// A missing .env is fine; env vars still apply.
	_ = godotenv.Load()

	if v := os.Getenv("MARKET_API_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("MARKET_API_TIMEOUT_SECONDS"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse MARKET_API_TIMEOUT_SECONDS: %w", err)
		}
		cfg.API.TimeoutSeconds = parsed
	}
	if v := os.Getenv("DEPOSIT_FLOOR"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("parse DEPOSIT_FLOOR: %w", err)
		}
		cfg.Deposit.Floor = parsed
	}
	if v := os.Getenv("DEPOSIT_RATE"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("parse DEPOSIT_RATE: %w", err)
		}
		cfg.Deposit.Rate = parsed
	}
	if v := os.Getenv("PORT"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse PORT: %w", err)
		}
		cfg.Server.Port = parsed
	}

	return cfg, nil
}

// Addr returns the listen address for the fake marketplace server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// Timeout returns the HTTP client timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

// DepositPolicy returns the configured deposit rule.
func (c *Config) DepositPolicy() models.DepositPolicy {
	return models.DepositPolicy{Floor: c.Deposit.Floor, Rate: c.Deposit.Rate}
}
