package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// userAgent mirrors a mobile Safari UA; several of the boards serve a
// simpler, stable markup to it.
const userAgent = "Mozilla/5.0 (iPad; CPU OS 12_2 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Mobile/15E148"

// PageCache is an optional read-through cache for page bodies.
type PageCache interface {
	GetPage(ctx context.Context, url string) (string, bool)
	SetPage(ctx context.Context, url, body string)
}

// Getter fetches one page body. Boards depend on this rather than the
// concrete Fetcher so extraction can be tested against fixtures.
type Getter interface {
	Fetch(ctx context.Context, url string) (string, error)
}

type Fetcher struct {
	httpClient *http.Client
	cache      PageCache // nil when no cache is configured
	logger     *zap.Logger
}

func NewFetcher(timeout time.Duration, cache PageCache, logger *zap.Logger) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		cache:  cache,
		logger: logger,
	}
}

// Fetch downloads one page with retries, reading through the page
// cache when one is configured.
func (f *Fetcher) Fetch(ctx context.Context, fullURL string) (string, error) {
	if f.cache != nil {
		if body, ok := f.cache.GetPage(ctx, fullURL); ok {
			return body, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)

	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(attempt) * time.Second
			f.logger.Debug("retrying request",
				zap.String("url", fullURL),
				zap.Int("attempt", attempt),
				zap.Duration("backoff", backoff),
			)
			time.Sleep(backoff)
		}

		resp, err := f.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("read response body: %w", err)
			continue
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			f.logger.Debug("successful request",
				zap.String("url", fullURL),
				zap.Int("status", resp.StatusCode),
			)
			if f.cache != nil {
				f.cache.SetPage(ctx, fullURL, string(body))
			}
			return string(body), nil
		}

		f.logger.Error("request failed",
			zap.String("url", fullURL),
			zap.Int("status", resp.StatusCode),
		)

		switch resp.StatusCode {
		case http.StatusTooManyRequests:
			f.logger.Warn("rate limit hit, backing off", zap.String("url", fullURL))
			time.Sleep(5 * time.Second)
			lastErr = fmt.Errorf("rate limit exceeded")
		case http.StatusNotFound:
			return "", fmt.Errorf("request to %q: not found", fullURL)
		case http.StatusForbidden:
			return "", fmt.Errorf("request to %q: forbidden", fullURL)
		default:
			lastErr = fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}
	}

	return "", fmt.Errorf("request to %q failed after retries: %w", fullURL, lastErr)
}
