// Package colourapi resolves colours to human-readable names using
// The Color API (https://www.thecolorapi.com/).
package colourapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/colornom/internal/colour"
	httputil "github.com/jmylchreest/colornom/internal/util/http"
)

// DefaultBaseURL is the public endpoint of The Color API.
const DefaultBaseURL = "http://www.thecolorapi.com"

var (
	// ErrNetwork means the service could not be reached.
	ErrNetwork = errors.New("network error")

	// ErrResponseFormat means the service answered with a non-2xx status
	// or a body that does not have the expected shape.
	ErrResponseFormat = errors.New("unexpected response from colour service")
)

// Result is the outcome of a name lookup.
type Result struct {
	// Name is the display name of the colour.
	Name string

	// ExactMatch reports whether the service knows a colour with exactly
	// these components, rather than the nearest named one.
	ExactMatch bool
}

// colourInformation mirrors the subset of the /id response that is consumed.
type colourInformation struct {
	Name *colourName `json:"name"`
}

type colourName struct {
	Value          string `json:"value"`
	ExactMatchName *bool  `json:"exact_match_name"`
}

// Client looks up colour names.
type Client struct {
	baseURL string
	timeout time.Duration
	logger  hclog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the service base URL. Trailing slashes are ignored.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithTimeout sets the request timeout. Zero, the default, means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l hclog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates a Client for the public service unless overridden by opts.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		logger:  hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lookup asks the service for the name of rgb.
func (c *Client) Lookup(ctx context.Context, rgb colour.RGB) (Result, error) {
	endpoint := c.endpoint(rgb)
	c.logger.Debug("looking up colour name", "url", endpoint, "hex", rgb.Hex())

	body, err := httputil.Fetch(ctx, endpoint, httputil.FetchOptions{
		Timeout: c.timeout,
		Headers: map[string]string{"Accept": "application/json"},
	})
	if err != nil {
		var statusErr *httputil.StatusError
		if errors.As(err, &statusErr) || errors.Is(err, httputil.ErrBodyTooLarge) {
			return Result{}, fmt.Errorf("%w: %v", ErrResponseFormat, err)
		}
		return Result{}, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	c.logger.Debug("received response", "bytes", len(body))

	result, err := decode(body)
	if err != nil {
		return Result{}, err
	}
	c.logger.Debug("resolved colour name", "name", result.Name, "exact_match", result.ExactMatch)

	return result, nil
}

// endpoint builds <base>/id?rgb=r,g,b. The commas are left unescaped as the
// service documents them.
func (c *Client) endpoint(rgb colour.RGB) string {
	q := url.Values{}
	q.Set("rgb", rgb.QueryValue())
	return c.baseURL + "/id?" + strings.ReplaceAll(q.Encode(), "%2C", ",")
}

// decode parses an /id response body.
func decode(body []byte) (Result, error) {
	var info colourInformation
	if err := json.Unmarshal(body, &info); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrResponseFormat, err)
	}

	if info.Name == nil {
		return Result{}, fmt.Errorf("%w: missing \"name\" object", ErrResponseFormat)
	}
	if info.Name.Value == "" {
		return Result{}, fmt.Errorf("%w: empty \"name.value\"", ErrResponseFormat)
	}
	if info.Name.ExactMatchName == nil {
		return Result{}, fmt.Errorf("%w: missing \"name.exact_match_name\"", ErrResponseFormat)
	}

	return Result{
		Name:       info.Name.Value,
		ExactMatch: *info.Name.ExactMatchName,
	}, nil
}
