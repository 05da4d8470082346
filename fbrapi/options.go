package fbrapi

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	apiKey      string
	timeout     time.Duration
	httpClient  *http.Client
	minInterval time.Duration
	maxAttempts int
}

func defaultOptions() clientOptions {
	return clientOptions{
		timeout:     30 * time.Second,
		minInterval: 3 * time.Second,
		maxAttempts: 3,
	}
}

// WithAPIKey seeds the client with an existing key instead of generating one
// on first use.
func WithAPIKey(key string) Option {
	return func(o *clientOptions) {
		o.apiKey = key
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithHTTPClient sets a custom HTTP client. Overrides WithTimeout.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithMinInterval sets the minimum interval between requests. The provider
// has no published rate limit; the default keeps well under the threshold
// observed in practice. Zero disables the pacing entirely.
func WithMinInterval(interval time.Duration) Option {
	return func(o *clientOptions) {
		o.minInterval = interval
	}
}

// WithMaxAttempts sets the total number of attempts per request when the
// server keeps rejecting the API key.
func WithMaxAttempts(attempts int) Option {
	return func(o *clientOptions) {
		if attempts > 0 {
			o.maxAttempts = attempts
		}
	}
}
