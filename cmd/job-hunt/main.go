package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"job-hunt/internal/config"
	"job-hunt/internal/ingest"
	"job-hunt/internal/logger"
	"job-hunt/internal/repl"
	"job-hunt/internal/scraper"
	"job-hunt/internal/storage/redis"
	"job-hunt/internal/storage/sqlite"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("starting job hunt",
		zap.String("db_path", cfg.DBPath),
		zap.Int("scrape_pages", cfg.ScrapePages),
	)

	store, err := sqlite.New(cfg.DBPath, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open local database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var cache scraper.PageCache
	if cfg.RedisAddr != "" {
		c, err := redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.PageCacheTTL, log)
		if err != nil {
			log.Warn("redis unavailable, scraping without a page cache", zap.Error(err))
		} else {
			defer c.Close()
			cache = c
		}
	}

	fetcher := scraper.NewFetcher(cfg.HTTPTimeout, cache, log)
	boards := scraper.AllBoards(cfg.ScrapePages)
	refresher := ingest.New(store, fetcher, boards, log)

	r := repl.New(refresher, cfg.HistoryFile, log)
	if err := r.Run(context.Background()); err != nil {
		log.Error("repl stopped with error", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log.Info("job hunt stopped")
}
