// ABOUTME: Standard HTTP client implementation acting as the single remote gateway
// ABOUTME: Attaches the bearer credential for backend calls and classifies transport failures

package standard

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "openwiki-client/core/errors"
	"openwiki-client/core/interfaces"
)

const userAgent = "OpenWikiClient/1.0"

// StandardHTTPClient implements the HTTPClient interface using the standard
// library. Every outbound call funnels through it: backend calls get the
// stored bearer credential attached, encyclopedia calls go out bare. Each
// call is a single attempt with no retries and no caching.
type StandardHTTPClient struct {
	client        *http.Client
	backendOrigin string
	credentials   interfaces.CredentialStore
}

// NewStandardHTTPClient creates a new gateway client. backendOrigin is the
// configured backend base URL; requests to URLs under it carry the bearer
// credential from creds when one is stored. creds may be nil for a client
// that never authenticates.
func NewStandardHTTPClient(timeout time.Duration, backendOrigin string, creds interfaces.CredentialStore) *StandardHTTPClient {
	return &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		backendOrigin: strings.TrimSuffix(backendOrigin, "/"),
		credentials:   creds,
	}
}

// Get performs an HTTP GET request
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	return c.do(ctx, http.MethodGet, url, nil)
}

// Post performs an HTTP POST request
func (c *StandardHTTPClient) Post(ctx context.Context, url string, body io.Reader) (interfaces.Response, error) {
	return c.do(ctx, http.MethodPost, url, body)
}

// Put performs an HTTP PUT request
func (c *StandardHTTPClient) Put(ctx context.Context, url string, body io.Reader) (interfaces.Response, error) {
	return c.do(ctx, http.MethodPut, url, body)
}

// Delete performs an HTTP DELETE request
func (c *StandardHTTPClient) Delete(ctx context.Context, url string) (interfaces.Response, error) {
	return c.do(ctx, http.MethodDelete, url, nil)
}

func (c *StandardHTTPClient) do(ctx context.Context, method, url string, body io.Reader) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.isBackendURL(url) && c.credentials != nil {
		token, err := c.credentials.Get(ctx)
		if err == nil && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &apperrors.TransportError{URL: url, Err: err}
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// isBackendURL reports whether url lives under the configured backend origin.
func (c *StandardHTTPClient) isBackendURL(url string) bool {
	return c.backendOrigin != "" && strings.HasPrefix(url, c.backendOrigin)
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
