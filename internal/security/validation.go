// Package security provides validation for user-supplied endpoints.
package security

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidateServiceURL validates the base URL of the naming service.
// Only http:// and https:// URLs with a host and no query or fragment are allowed.
func ValidateServiceURL(urlStr string) error {
	if urlStr == "" {
		return fmt.Errorf("empty URL")
	}

	parsed, err := url.Parse(urlStr)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "http" && scheme != "https" {
		return fmt.Errorf("invalid URL protocol (only http:// and https:// allowed): %q", parsed.Scheme)
	}

	if parsed.Host == "" {
		return fmt.Errorf("URL must have a hostname")
	}

	if parsed.User != nil {
		return fmt.Errorf("URL must not contain credentials")
	}

	if parsed.RawQuery != "" || parsed.Fragment != "" {
		return fmt.Errorf("URL must not contain a query or fragment")
	}

	return nil
}
