// Package httpclient is a small helper for the outbound calls the source
// fetchers make: one-shot GET/POST with basic-auth, bearer-token or custom
// header authentication, a shared timeout, and optionally relaxed TLS
// verification for backends on internal networks with self-signed
// certificates.
package httpclient

import (
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"strings"
	"time"
)

const userAgent = "statusboard-srv/1.0"

// Config controls the shared transport for all requests made by a Client.
type Config struct {
	Timeout time.Duration

	// InsecureSkipVerify disables TLS certificate verification. Explicitly
	// insecure; only meant for internal backends with self-signed certs.
	InsecureSkipVerify bool
}

// BasicAuth carries credentials for the Authorization: Basic header.
type BasicAuth struct {
	Username string
	Password string
}

// Request describes one outbound call.
type Request struct {
	Method      string
	URL         string
	Body        string
	BasicAuth   *BasicAuth
	BearerToken string
	Headers     map[string]string
}

// Client issues HTTP(S) requests with a fixed timeout and TLS policy.
type Client struct {
	http *http.Client
}

// New creates a Client from the given policy.
func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.InsecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} // #nosec G402
	}

	return &Client{
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
	}
}

// Do executes the request and returns the response body as text.
// Failures are always a *Error: KindNetwork for transport problems,
// KindStatus for non-2xx responses.
func (c *Client) Do(ctx context.Context, req Request) (string, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if req.Body != "" {
		body = strings.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, req.URL, body)
	if err != nil {
		return "", &Error{Kind: KindNetwork, URL: req.URL, Err: err}
	}

	httpReq.Header.Set("User-Agent", userAgent)
	if req.BasicAuth != nil {
		httpReq.SetBasicAuth(req.BasicAuth.Username, req.BasicAuth.Password)
	}
	if req.BearerToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.BearerToken)
	}
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", &Error{Kind: KindNetwork, URL: req.URL, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{Kind: KindNetwork, URL: req.URL, Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", &Error{Kind: KindStatus, URL: req.URL, StatusCode: resp.StatusCode}
	}

	return string(raw), nil
}

// Get fetches url with optional basic auth.
func (c *Client) Get(ctx context.Context, url string, auth *BasicAuth) (string, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, URL: url, BasicAuth: auth})
}

// PostJSON posts a JSON body to url with optional basic auth.
func (c *Client) PostJSON(ctx context.Context, url string, auth *BasicAuth, body string) (string, error) {
	return c.Do(ctx, Request{
		Method:    http.MethodPost,
		URL:       url,
		Body:      body,
		BasicAuth: auth,
		Headers:   map[string]string{"Content-Type": "application/json"},
	})
}
