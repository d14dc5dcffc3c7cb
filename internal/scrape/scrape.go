// Package scrape fetches set pages from the card wiki and extracts card
// listings to seed the catalog.
package scrape

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Card is one scraped listing candidate.
type Card struct {
	Name   string `json:"name"`
	CardID string `json:"card_id"`
	Rare   string `json:"rare"`
}

// Scraper fetches and parses wiki pages. Requests are rate limited so
// repeated previews stay polite to the wiki.
type Scraper struct {
	client  *http.Client
	limiter *rate.Limiter
	log     *zap.Logger
}

func NewScraper(timeout time.Duration, requestsPerMinute int, log *zap.Logger) *Scraper {
	if requestsPerMinute < 1 {
		requestsPerMinute = 10
	}
	return &Scraper{
		client: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(requestsPerMinute)), 1),
		log:     log,
	}
}

// FetchCards downloads one wiki page and extracts its card table.
func (s *Scraper) FetchCards(ctx context.Context, pageURL string) ([]Card, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "cardstock/1.0 (inventory import)")
	req.Header.Set("Accept", "text/html")

	resp, err := s.doWithRetry(req, 2)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	cards, err := ParseCards(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", pageURL, err)
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("no card rows found at %s", pageURL)
	}

	s.log.Info("scraped card page",
		zap.String("url", pageURL),
		zap.Int("cards", len(cards)))
	return cards, nil
}

// doWithRetry retries transport failures and 5xx responses with a linear
// backoff.
func (s *Scraper) doWithRetry(req *http.Request, maxRetries int) (*http.Response, error) {
	var lastErr error
	for i := 0; i <= maxRetries; i++ {
		resp, err := s.client.Do(req)
		if err != nil {
			lastErr = err
			time.Sleep(time.Duration(i+1) * 500 * time.Millisecond)
			continue
		}
		if resp.StatusCode >= 500 {
			resp.Body.Close()
			lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
			time.Sleep(time.Duration(i+1) * 500 * time.Millisecond)
			continue
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
		}
		return resp, nil
	}
	return nil, fmt.Errorf("request failed after %d retries: %w", maxRetries, lastErr)
}
