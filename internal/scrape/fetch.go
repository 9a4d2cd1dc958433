package scrape

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// The page serves different markup to clients it does not recognize, so
// the fetcher presents itself as a desktop browser with an Italian locale.
const (
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	acceptLanguage = "it-IT,it;q=0.9,en;q=0.8"
)

// Fetcher retrieves the raw exam page over HTTP.
type Fetcher struct {
	http *resty.Client
	url  string
}

// NewFetcher creates a fetcher for the given page URL. Every request is
// bounded by the given timeout.
func NewFetcher(pageURL string, timeout time.Duration) *Fetcher {
	client := resty.New()
	client.SetHeader("user-agent", userAgent)
	client.SetHeader("accept-language", acceptLanguage)
	client.SetTimeout(timeout)
	return &Fetcher{
		http: client,
		url:  pageURL,
	}
}

// URL returns the configured page URL.
func (f *Fetcher) URL() string {
	return f.url
}

// Fetch performs a single GET of the exam page and returns the response
// body. Non-2xx responses are errors.
func (f *Fetcher) Fetch(ctx context.Context) (string, error) {
	res, err := f.http.R().
		SetContext(ctx).
		Get(f.url)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", f.url, err)
	}
	if res.IsError() {
		return "", fmt.Errorf("fetch %s: unexpected status %s", f.url, res.Status())
	}
	return res.String(), nil
}
