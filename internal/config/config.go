package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Local store
	DBPath      string
	HistoryFile string

	// Scraping
	HTTPTimeout time.Duration
	ScrapePages int

	// Page cache (optional; empty RedisAddr disables it)
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	PageCacheTTL  time.Duration

	// Logging
	LogLevel string
	LogFile  string
}

func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		DBPath:       "jobs.db",
		HistoryFile:  ".jobhunthistory",
		HTTPTimeout:  30 * time.Second,
		ScrapePages:  5,
		PageCacheTTL: 15 * time.Minute,
		LogLevel:     "info",
		LogFile:      "job-hunt.log",
		RedisDB:      0,
	}

	if path := os.Getenv("DB_PATH"); path != "" {
		cfg.DBPath = path
	}

	if history := os.Getenv("HISTORY_FILE"); history != "" {
		cfg.HistoryFile = history
	}

	if timeout := os.Getenv("HTTP_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
		}
		cfg.HTTPTimeout = d
	}

	if pages := os.Getenv("SCRAPE_PAGES"); pages != "" {
		n, err := strconv.Atoi(pages)
		if err != nil {
			return nil, fmt.Errorf("invalid SCRAPE_PAGES: %w", err)
		}
		cfg.ScrapePages = n
	}

	cfg.RedisAddr = os.Getenv("REDIS_ADDR")
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")

	if redisDB := os.Getenv("REDIS_DB"); redisDB != "" {
		db, err := strconv.Atoi(redisDB)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
		}
		cfg.RedisDB = db
	}

	if ttl := os.Getenv("PAGE_CACHE_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid PAGE_CACHE_TTL: %w", err)
		}
		cfg.PageCacheTTL = d
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		cfg.LogLevel = logLevel
	}

	if logFile := os.Getenv("LOG_FILE"); logFile != "" {
		cfg.LogFile = logFile
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("database path is empty")
	}

	if c.HTTPTimeout < time.Second {
		return fmt.Errorf("http timeout too small: %v", c.HTTPTimeout)
	}

	if c.ScrapePages < 1 || c.ScrapePages > 10 {
		return fmt.Errorf("scrape pages must be between 1 and 10")
	}

	if c.PageCacheTTL < time.Minute {
		return fmt.Errorf("page cache TTL too small: %v", c.PageCacheTTL)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	return nil
}
