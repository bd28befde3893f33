// Package fetch retrieves company websites and extracts the metadata used to enrich
// incomplete company profiles.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultTimeout bounds one page load, static or rendered.
	DefaultTimeout = 15 * time.Second
	// DefaultUserAgent identifies the enrichment crawler to site operators.
	DefaultUserAgent = "Mozilla/5.0 (compatible; TalentBridgeBot/1.0)"
	// MaxBodyBytes caps how much of a page is read.
	MaxBodyBytes = 4 << 20

	acceptLanguage = "de-DE,de;q=0.9,en;q=0.8"
)

// Result is a downloaded page. URL is the address after redirects.
type Result struct {
	URL         string
	HTML        string
	ContentType string
	StatusCode  int
}

// Error reports which page could not be used and why.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	msg := "fetch error for " + e.URL + ": " + e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Cause }

// Options configures page downloads. A nil Client gets one with Timeout.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	Client    *http.Client
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() *Options {
	return &Options{Timeout: DefaultTimeout, UserAgent: DefaultUserAgent}
}

// NormalizeURL adds an https scheme to bare hosts such as "acme.de".
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.Contains(raw, "://") {
		return raw
	}
	return "https://" + raw
}

// URL downloads a page. Only absolute http(s) URLs are accepted. A non-200 answer
// returns the Result together with an error so callers can inspect the status.
func URL(ctx context.Context, rawURL string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	fail := func(message string, cause error) error {
		return &Error{URL: rawURL, Message: message, Cause: cause}
	}

	target, err := url.Parse(rawURL)
	if err != nil || target.Host == "" || (target.Scheme != "http" && target.Scheme != "https") {
		return nil, fail("invalid URL", err)
	}

	req, err := newRequest(ctx, target, opts.UserAgent)
	if err != nil {
		return nil, fail("failed to create request", err)
	}

	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fail("HTTP request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes))
	if err != nil {
		return nil, fail("failed to read response body", err)
	}

	result := &Result{
		URL:         resp.Request.URL.String(),
		HTML:        string(body),
		ContentType: resp.Header.Get("Content-Type"),
		StatusCode:  resp.StatusCode,
	}
	if resp.StatusCode != http.StatusOK {
		return result, fail(fmt.Sprintf("HTTP status %d", resp.StatusCode), nil)
	}
	return result, nil
}

func newRequest(ctx context.Context, target *url.URL, userAgent string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, err
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", acceptLanguage)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	return req, nil
}
