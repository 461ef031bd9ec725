package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Finnhub struct {
		APIKey       string        `yaml:"api_key"`
		BaseURL      string        `yaml:"base_url"`
		Symbols      []string      `yaml:"symbols"`
		Timeout      time.Duration `yaml:"timeout"`
		RateLimit    float64       `yaml:"rate_limit"`    // requests per second
		RateBurst    float64       `yaml:"rate_burst"`    // bucket capacity
		HistoryYears int           `yaml:"history_years"` // candle lookback
	} `yaml:"finnhub"`
	Quant struct {
		ServiceURL string        `yaml:"service_url"`
		Timeout    time.Duration `yaml:"timeout"`
		Retries    int           `yaml:"retries"`
		CacheTTL   time.Duration `yaml:"cache_ttl"`
		Redis      struct {
			Enabled  bool   `yaml:"enabled"`
			Host     string `yaml:"host"`
			Port     int    `yaml:"port"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"quant"`
	Spectral struct {
		WindowSize   int     `yaml:"window_size"`
		NumFreq      int     `yaml:"num_freq"`
		OutputBars   int     `yaml:"output_bars"`
		ThresholdPct float64 `yaml:"threshold_pct"`
	} `yaml:"spectral"`
	Refresh struct {
		Enabled  bool   `yaml:"enabled"`
		Schedule string `yaml:"schedule"` // cron expression
	} `yaml:"refresh"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("FINNHUB_API_KEY"); v != "" {
		c.Finnhub.APIKey = v
	}
	if v := os.Getenv("SYMBOLS"); v != "" {
		c.Finnhub.Symbols = strings.Split(v, ",")
	}
	if v := os.Getenv("QUANT_SERVICE_URL"); v != "" {
		c.Quant.ServiceURL = v
	}
	if v := os.Getenv("REDIS_HOST"); v != "" {
		c.Quant.Redis.Host = v
	}

	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Finnhub.APIKey == "" {
		return fmt.Errorf("finnhub.api_key is required")
	}
	if len(c.Finnhub.Symbols) == 0 {
		return fmt.Errorf("finnhub.symbols cannot be empty")
	}
	if c.Spectral.WindowSize > 0 && c.Spectral.NumFreq > 0 &&
		c.Spectral.WindowSize < 2*c.Spectral.NumFreq+2 {
		return fmt.Errorf("spectral.window_size %d cannot resolve %d frequencies",
			c.Spectral.WindowSize, c.Spectral.NumFreq)
	}
	return nil
}
