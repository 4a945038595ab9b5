// Package fetch retrieves data from the third-party stats APIs with
// caching, per-host rate limiting, and retry on transient failures.
package fetch

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/askengine/askengine/internal/cache"
	"github.com/askengine/askengine/internal/model"
)

const fetchMaxRetries = 5

// fetchSleepFunc is the sleep used between retries (injectable for tests)
var fetchSleepFunc = time.Sleep

// Fetcher performs cached, rate-limited GET requests against stats APIs
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
	cache      cache.Cache    // nil when caching is disabled
	limiter    *Limiter
	robots     *RobotsChecker // nil when robots checking is disabled
	cacheTTL   time.Duration
}

// NewFetcher creates a fetcher from the process configuration
func NewFetcher(cfg *model.Config) *Fetcher {
	transport := &http.Transport{}
	if cfg.HTTP.InsecureTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	var c cache.Cache
	if cfg.Cache.Enabled {
		c = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
	}

	var robots *RobotsChecker
	if cfg.HTTP.CheckRobots {
		robots = NewRobotsChecker(cfg.HTTP.UserAgent, cfg.HTTP.Timeout)
	}

	return &Fetcher{
		httpClient: &http.Client{
			Timeout:   cfg.HTTP.Timeout,
			Transport: transport,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent: cfg.HTTP.UserAgent,
		maxBytes:  cfg.HTTP.MaxBodyBytes,
		cache:     c,
		limiter:   NewLimiter(cfg.RateLimiting.RequestsPerSecond, cfg.RateLimiting.Burst),
		robots:    robots,
		cacheTTL:  cfg.Cache.DiskTTL,
	}
}

// Get fetches rawURL with the given query parameters and extra headers,
// returning the response body. Cached responses are served without a
// network round trip.
func (f *Fetcher) Get(ctx context.Context, rawURL string, params map[string]string, headers map[string]string) ([]byte, error) {
	key := cache.RequestKey(rawURL, params)

	if f.cache != nil {
		if body, found := f.cache.Get(key); found {
			return body, nil
		}
	}

	crawlDelay := time.Duration(0)
	if f.robots != nil {
		allowed, delay, err := f.robots.CanFetch(ctx, rawURL)
		if err == nil && !allowed {
			return nil, fmt.Errorf("robots.txt disallows %s", rawURL)
		}
		crawlDelay = delay
	}

	if err := f.limiter.WaitWithDelay(ctx, rawURL, crawlDelay); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	var body []byte
	var lastErr error
	for attempt := 1; attempt <= fetchMaxRetries; attempt++ {
		body, lastErr = f.doGet(ctx, rawURL, params, headers)
		if lastErr == nil {
			break
		}
		if !isRetryableFetchError(lastErr) || attempt == fetchMaxRetries {
			return nil, lastErr
		}
		// Linear backoff: 1s, 2s, 3s, ...
		fetchSleepFunc(time.Duration(attempt) * time.Second)
	}
	if lastErr != nil {
		return nil, lastErr
	}

	if f.cache != nil {
		if err := f.cache.Set(key, body, f.cacheTTL); err != nil {
			// Cache write failures never fail the fetch
			_ = err
		}
	}

	return body, nil
}

func (f *Fetcher) doGet(ctx context.Context, rawURL string, params map[string]string, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	if len(params) > 0 {
		q := url.Values{}
		for k, v := range params {
			q.Set(k, v)
		}
		req.URL.RawQuery = q.Encode()
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	return body, nil
}

// isRetryableFetchError reports whether an error warrants another attempt:
// 408/429/5xx statuses and transient network failures.
func isRetryableFetchError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()

	for _, status := range []string{"408", "429", "500", "502", "503", "504"} {
		if strings.Contains(msg, "unexpected status: "+status) {
			return true
		}
	}

	if strings.HasPrefix(msg, "fetch: ") {
		for _, transient := range []string{"connection refused", "connection reset", "timeout", "EOF"} {
			if strings.Contains(msg, transient) {
				return true
			}
		}
	}

	return false
}
