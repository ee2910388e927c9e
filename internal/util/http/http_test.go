package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// TestFetchSetsUserAgent tests that requests identify the application.
func TestFetchSetsUserAgent(t *testing.T) {
	var gotUA, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	data, err := Fetch(context.Background(), server.URL, FetchOptions{
		Headers: map[string]string{"Accept": "application/json"},
	})
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if string(data) != "ok" {
		t.Errorf("Fetch() = %q, want %q", data, "ok")
	}
	if !strings.HasPrefix(gotUA, UserAgentName+"/") {
		t.Errorf("User-Agent = %q, want prefix %q", gotUA, UserAgentName+"/")
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept = %q, want application/json", gotAccept)
	}
}

// TestFetchStatusError tests that non-2xx responses return a StatusError.
func TestFetchStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := Fetch(context.Background(), server.URL, FetchOptions{})

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("Fetch() error = %v, want *StatusError", err)
	}
	if statusErr.StatusCode != http.StatusBadGateway {
		t.Errorf("StatusCode = %d, want %d", statusErr.StatusCode, http.StatusBadGateway)
	}
}

// TestFetchAcceptsNoContent tests that any 2xx status is a success.
func TestFetchAcceptsNoContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	data, err := Fetch(context.Background(), server.URL, FetchOptions{})
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(data) != 0 {
		t.Errorf("Fetch() returned %d bytes, want 0", len(data))
	}
}

// TestFetchTransportError tests that connection failures return a TransportError.
func TestFetchTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := Fetch(context.Background(), url, FetchOptions{Timeout: time.Second})

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("Fetch() error = %v, want *TransportError", err)
	}
}

// TestFetchTimeout tests that the configured timeout is applied.
func TestFetchTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	_, err := Fetch(context.Background(), server.URL, FetchOptions{Timeout: 50 * time.Millisecond})

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("Fetch() error = %v, want *TransportError", err)
	}
}

// TestFetchBodyTooLarge tests that oversized bodies are rejected.
func TestFetchBodyTooLarge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(strings.Repeat("x", 65)))
	}))
	defer server.Close()

	_, err := Fetch(context.Background(), server.URL, FetchOptions{MaxBodySize: 64})
	if !errors.Is(err, ErrBodyTooLarge) {
		t.Fatalf("Fetch() error = %v, want ErrBodyTooLarge", err)
	}
}

// TestFetchBodyAtLimit tests that a body of exactly the limit is accepted.
func TestFetchBodyAtLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(strings.Repeat("x", 64)))
	}))
	defer server.Close()

	data, err := Fetch(context.Background(), server.URL, FetchOptions{MaxBodySize: 64})
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(data) != 64 {
		t.Errorf("Fetch() returned %d bytes, want 64", len(data))
	}
}

// TestNewClientTimeout tests that a zero timeout leaves the client unbounded.
func TestNewClientTimeout(t *testing.T) {
	if got := newClient(0).Timeout; got != 0 {
		t.Errorf("newClient(0).Timeout = %v, want 0", got)
	}
	if got := newClient(3 * time.Second).Timeout; got != 3*time.Second {
		t.Errorf("newClient(3s).Timeout = %v, want 3s", got)
	}
}
