package fetch

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// ErrUnavailable indicates a transport-level failure: the document could not
// be retrieved at all (connection refused, DNS, timeout).
var ErrUnavailable = errors.New("source unavailable")

// ErrBadStatus indicates the source answered with a non-success HTTP status.
var ErrBadStatus = errors.New("unexpected response status")

// Client retrieves raw timetable documents from the upstream site.
type Client struct {
	http    *http.Client
	baseURL string
}

// NewClient creates a new fetch client based on the configuration.
func NewClient(cfg Config) *Client {
	// Ensure timeout defaults if not set
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	// Create custom transport with strict timeouts
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration, // Connection setup timeout
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	if cfg.InsecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return &Client{
		http: &http.Client{
			Transport: transport,
			Timeout:   timeoutDuration,
		},
		baseURL: cfg.BaseURL,
	}
}

// BaseURL returns the configured root URL of the timetable site.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get retrieves the document at url and returns its body.
// Transport failures are reported as ErrUnavailable, non-2xx responses as ErrBadStatus.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", url, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d for %s", ErrBadStatus, resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, url, err)
	}

	return body, nil
}
