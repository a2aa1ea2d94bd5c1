package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// HTTPClient abstracts HTTP requests for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTP checks that a GET request to URL answers with the expected status.
type HTTP struct {
	URL            string        // target URL (required)
	ExpectedStatus int           // expected status (default: any status below 500)
	Timeout        time.Duration // request timeout (default 5s)
	Client         HTTPClient    // injected for testing; nil uses http.DefaultClient
}

// Name returns "http: <url>".
func (p *HTTP) Name() string {
	return "http: " + p.URL
}

// Check performs the request and compares the status code.
func (p *HTTP) Check(ctx context.Context) (bool, error) {
	if p.URL == "" {
		return false, ErrMissingTarget
	}
	if u, err := url.Parse(p.URL); err != nil || u.Scheme == "" || u.Host == "" {
		return false, fmt.Errorf("invalid URL: %s", p.URL)
	}

	ctx, cancel := context.WithTimeout(ctx, orDefault(p.Timeout))
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.URL, http.NoBody)
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}

	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return false, fmt.Errorf("request to %s failed: %w", p.URL, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if p.ExpectedStatus == 0 {
		if resp.StatusCode >= http.StatusInternalServerError {
			return false, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
		}
		return true, nil
	}
	if resp.StatusCode != p.ExpectedStatus {
		return false, fmt.Errorf("%w: got %d, want %d", ErrUnexpectedStatus, resp.StatusCode, p.ExpectedStatus)
	}
	return true, nil
}
