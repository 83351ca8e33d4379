package client

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/odatools/catalog-browser/app/auth"
)

// Result is the outcome of a fetch that received an HTTP response. Error
// statuses (4xx/5xx) are results, not errors: the protocol answered, and the
// caller decides what the status means.
type Result struct {
	StatusCode int
	Body       []byte
}

// Fetcher issues single authenticated GET requests against the backend.
// Timeout policy lives on the injected http.Client; the fetcher itself never
// retries and never follows a policy of its own.
type Fetcher struct {
	httpClient *http.Client
	creds      *auth.Provider
	userAgent  string
}

func NewFetcher(httpClient *http.Client, creds *auth.Provider, userAgent string) *Fetcher {
	return &Fetcher{
		httpClient: httpClient,
		creds:      creds,
		userAgent:  userAgent,
	}
}

// Fetch performs one authenticated GET. A non-nil error means the request
// never produced an HTTP response (credential resolution, connection, TLS,
// DNS or timeout failure).
func (f *Fetcher) Fetch(ctx context.Context, url string) (*Result, error) {
	header, err := f.creds.Header()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", header)
	req.Header.Set("User-Agent", f.userAgent)

	slog.Debug("Fetching", "url", url)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	slog.Debug("Fetched", "url", url, "status", resp.StatusCode, "bytes", len(body))

	return &Result{StatusCode: resp.StatusCode, Body: body}, nil
}
