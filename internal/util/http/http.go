// Package http provides HTTP utilities for fetching remote resources.
package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jmylchreest/colornom/internal/version"
)

const (
	// UserAgentName is the application name used in the User-Agent header.
	UserAgentName = "colornom"

	// DefaultMaxBodySize bounds the response body read by Fetch.
	DefaultMaxBodySize = 512 << 10
)

// ErrBodyTooLarge is returned by Fetch when the response body exceeds the size limit.
var ErrBodyTooLarge = errors.New("response body too large")

// FetchOptions configures HTTP fetch behavior.
type FetchOptions struct {
	// Timeout specifies the HTTP request timeout.
	// If zero, the request is bounded only by ctx.
	Timeout time.Duration

	// MaxBodySize is the largest accepted body in bytes.
	// If zero, DefaultMaxBodySize is used.
	MaxBodySize int64

	// Headers specifies additional HTTP headers to send with the request.
	Headers map[string]string
}

// StatusError is returned by Fetch when the server answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Status)
}

// TransportError is returned by Fetch when no response could be obtained
// or its body could not be read.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Fetch retrieves content from a URL with context and timeout support.
// It automatically sets the User-Agent header and classifies failures as
// *TransportError or *StatusError.
func Fetch(ctx context.Context, url string, opts FetchOptions) ([]byte, error) {
	limit := opts.MaxBodySize
	if limit <= 0 {
		limit = DefaultMaxBodySize
	}

	client := newClient(opts.Timeout)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Set User-Agent with dynamic version
	userAgent := fmt.Sprintf("%s/%s", UserAgentName, version.Short())
	req.Header.Set("User-Agent", userAgent)

	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &TransportError{Op: "request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, &TransportError{Op: "failed to read response body", Err: err}
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrBodyTooLarge, limit)
	}

	return data, nil
}

// newClient returns a client whose overall timeout is timeout; zero disables it.
func newClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
	}
}
